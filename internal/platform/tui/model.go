package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/playground"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

// Model is the Bubble Tea model for the collision playground.
type Model struct {
	pg         *playground.Playground
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	status     playground.Status
	message    string
	standalone bool // back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a playground model sized to the terminal in cfg.
func NewModel(pg *playground.Playground, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		pg:         pg,
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		status:     pg.Status(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH))
	return m
}

// sceneHeight is the number of rows left for the scene below the status
// lines and the help bar.
func sceneHeight(h int) int {
	return core.Max(h-statusLines-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, sceneHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Playground actions are queued for the
// next tick; help and screenshots are handled immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick applies the queued actions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.inputFrame.Empty() {
		if m.inputFrame.Has(core.ActionRecord) {
			m.message = m.record()
		}
		m.status = m.pg.Step(m.inputFrame)
		if m.inputFrame.Has(core.ActionReset) && !m.inputFrame.Has(core.ActionRecord) {
			m.message = "scene reset"
			if m.status.ResetError != "" {
				m.message = "reset failed: " + m.status.ResetError
			}
		}
		m.inputFrame.Clear()
	}
	return m, tickCmd(m.config.TickRate)
}

// record evaluates a first-match query at the probe position and saves it.
// Returns a message for the status line.
func (m Model) record() string {
	r, err := m.pg.Snapshot()
	if err != nil {
		return "record failed: " + err.Error()
	}
	if m.store == nil {
		return fmt.Sprintf("%s: %s (not saved)", r.Query.Name, r.Value)
	}

	id, err := m.store.SaveResult(storage.FromResult(m.pg.ID(), 0, r))
	if err != nil {
		return "save failed: " + err.Error()
	}
	return fmt.Sprintf("#%d %s: %s", id, r.Query.Name, r.Value)
}

// saveScreenshot saves the current scene as plain text to
// ~/.collide/screenshots.
func (m *Model) saveScreenshot() {
	m.pg.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.message = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".collide", "screenshots")
	//nolint:errcheck // WriteFile reports the failure
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.pg.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.message = "screenshot failed: " + err.Error()
		return
	}
	m.message = "saved " + path
}

// View renders the scene, the status lines and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.pg.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return RenderScreen(m.screen) + "\n" +
		RenderStatus(m.status, m.message) + "\n" +
		helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Status returns the last playground status.
func (m Model) Status() playground.Status {
	return m.status
}

// Message returns the current status-line message.
func (m Model) Message() string {
	return m.message
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the playground as a standalone program.
func Run(pg *playground.Playground, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(pg, store, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
