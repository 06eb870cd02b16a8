package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/playground"
	"github.com/vovakirdan/tui-collide/internal/scene"
)

// ansiCodes holds the terminal color for each core.Color, indexed by value.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyles is built once from ansiCodes.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	alertStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	messageStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// statusLines is the number of rows RenderStatus produces.
const statusLines = 2

func field(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value)
}

// RenderStatus renders the playground status as two lines: the probe and
// what it touches, then the selected target and the line of sight.
func RenderStatus(st playground.Status, message string) string {
	probe := []string{
		field("probe", st.Probe),
		field("at", scene.FormatPoint(st.Position)),
		field("moves", fmt.Sprint(st.Moves)),
	}
	if st.Blocked != "" {
		probe = append(probe, alertStyle.Render("blocked by "+st.Blocked))
	}
	if len(st.Touching) > 0 {
		probe = append(probe, alertStyle.Render("touching "+strings.Join(st.Touching, ", ")))
	}

	var target []string
	if st.Target == "" {
		target = append(target, labelStyle.Render("no targets"))
	} else {
		state := "solid"
		if !st.TargetCollidable {
			state = "ghost"
		}
		target = append(target,
			field("target", st.Target),
			labelStyle.Render("("+state+")"),
			field("sector", st.Sector.String()),
		)
		if st.SightBlocker != "" {
			target = append(target, alertStyle.Render("sight blocked by "+st.SightBlocker))
		} else {
			target = append(target, okStyle.Render("clear sight"))
		}
	}
	if message != "" {
		target = append(target, messageStyle.Render(message))
	}

	return strings.Join(probe, "  ") + "\n" + strings.Join(target, "  ")
}

// RenderReport formats the results of a scene run as a table-like listing
// followed by a summary line.
func RenderReport(doc *scene.Document, results []scene.Result) string {
	var b strings.Builder

	title := doc.ID
	if doc.Title != "" {
		title = fmt.Sprintf("%s (%s)", doc.Title, doc.ID)
	}
	b.WriteString(valueStyle.Render(title))
	b.WriteString("\n")

	width := 0
	for i, r := range results {
		width = core.Max(width, len(r.Label(i)))
	}

	failed := 0
	for i, r := range results {
		mark := okStyle.Render("ok  ")
		if !r.Passed {
			mark = alertStyle.Render("FAIL")
			failed++
		}
		fmt.Fprintf(&b, "  %s  %-*s  %-9s  %s\n",
			mark, width, r.Label(i), r.Query.Kind, r.Value)
	}

	summary := fmt.Sprintf("%d queries, %d passed, %d failed", len(results), len(results)-failed, failed)
	if failed > 0 {
		b.WriteString(alertStyle.Render(summary))
	} else {
		b.WriteString(okStyle.Render(summary))
	}
	b.WriteString("\n")
	return b.String()
}
