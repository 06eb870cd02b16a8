package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show scene list sidebar
	sidebarWidth       = 20 // Width of scene list sidebar
	maxRuns            = 100
)

// HistoryKeyMap defines the key bindings for the run history screen.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Open      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScene, k.Open, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScene, k.PrevScene},
		{k.Open, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scene"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open run"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses saved runs per scene. Opening a run lists the
// stored outcome of each of its queries.
type HistoryModel struct {
	scenes      []registry.SceneInfo
	sceneCursor int
	store       *storage.Store
	runs        []storage.RunEntry
	results     []storage.Record
	openRun     *storage.RunEntry // non-nil while a run's results are shown
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	err         error
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a run history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		scenes:      registry.List(),
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *HistoryModel) tableWidth() int {
	w := m.width - 4
	if m.showSidebar {
		w -= sidebarWidth + 3
	}
	return w
}

// createTable creates a table with columns for the current view.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.openRun != nil {
		queryWidth := core.Max(m.tableWidth()-36, 16)
		columns = []table.Column{
			{Title: "Query", Width: queryWidth},
			{Title: "Kind", Width: 10},
			{Title: "Value", Width: 16},
			{Title: "", Width: 4},
		}
	} else {
		columns = []table.Column{
			{Title: "Run", Width: 6},
			{Title: "Queries", Width: 8},
			{Title: "Failed", Width: 7},
			{Title: "Scene", Width: 9},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// currentScene returns the ID of the selected scene.
func (m *HistoryModel) currentScene() string {
	if len(m.scenes) == 0 {
		return ""
	}
	return m.scenes[m.sceneCursor].ID
}

// loadRuns loads the recent runs of the selected scene.
func (m *HistoryModel) loadRuns() {
	m.runs, m.err = nil, nil
	if m.store != nil && len(m.scenes) > 0 {
		m.runs, m.err = m.store.RecentRuns(m.currentScene(), maxRuns)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprint(r.Total),
			fmt.Sprint(r.Failed()),
			r.ShortDigest(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// loadResults switches to the results of the run under the cursor.
func (m *HistoryModel) loadResults() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.runs) {
		return
	}
	m.showRun(m.runs[i])
}

// showRun lists the stored results of run.
func (m *HistoryModel) showRun(run storage.RunEntry) {
	m.results, m.err = m.store.RunResults(run.ID)
	m.openRun = &run
	m.table = m.createTable()

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		mark := "ok"
		if !r.Passed {
			mark = "FAIL"
		}
		rows[i] = table.Row{r.Query, r.Kind, r.Value, mark}
	}
	m.table.SetRows(rows)
}

// closeRun returns from a run's results to the run list.
func (m *HistoryModel) closeRun() {
	m.openRun = nil
	m.results = nil
	m.table = m.createTable()
	m.loadRuns()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.openRun != nil {
				m.closeRun()
				return m, nil
			}
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if m.openRun == nil {
				m.loadResults()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextScene), key.Matches(msg, m.keys.PrevScene):
			if len(m.scenes) == 0 {
				return m, nil
			}
			dir := 1
			if key.Matches(msg, m.keys.PrevScene) {
				dir = -1
			}
			m.sceneCursor = (m.sceneCursor + dir + len(m.scenes)) % len(m.scenes)
			m.closeRun()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		if m.openRun != nil {
			m.showRun(*m.openRun)
		} else {
			m.table = m.createTable()
			m.loadRuns()
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUN HISTORY"
	if len(m.scenes) > 0 {
		title = fmt.Sprintf("RUN HISTORY - %s", m.scenes[m.sceneCursor].Title)
	}
	if m.openRun != nil {
		title += fmt.Sprintf(" - run #%d", m.openRun.ID)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(content)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSidebar renders the scene list.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Scenes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.scenes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.sceneCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := s.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}
	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot load history:\n" + m.err.Error())
	case m.store == nil:
		return emptyStyle.Render("No run database open.")
	case m.openRun == nil && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nUse `collide run --save` to record one.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewHistoryModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
