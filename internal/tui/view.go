package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskcalc/internal/keypad"
)

const (
	cellWidth = 5
	cellGap   = 1
	// display box (3 lines), status line, blank line
	gridTop = 5
	// each grid row is followed by one blank line
	rowStride = 2
)

func gridWidth() int {
	cols := keypad.Columns()
	return cols*cellWidth + (cols-1)*cellGap
}

// buttonAt hit-tests a mouse position against the keypad grid.
func buttonAt(x, y int) (keypad.Button, bool) {
	dy := y - gridTop
	if dy < 0 || dy%rowStride != 0 {
		return keypad.Button{}, false
	}
	r := dy / rowStride
	if r >= len(keypad.Grid) || x < 0 {
		return keypad.Button{}, false
	}
	stride := cellWidth + cellGap
	if x%stride >= cellWidth {
		return keypad.Button{}, false
	}
	c := x / stride
	row := keypad.Grid[r]
	if c >= len(row) {
		return keypad.Button{}, false
	}
	return row[c], true
}

func buttonFor(ev keypad.Event) (keypad.Button, bool) {
	for _, row := range keypad.Grid {
		for _, b := range row {
			if got, ok := keypad.Parse(b.Key); ok && got == ev {
				return b, true
			}
		}
	}
	return keypad.Button{}, false
}

// fitDisplay keeps the tail of text visible when it is wider than width.
func fitDisplay(text string, width int) string {
	w := ansi.StringWidth(text)
	if w <= width {
		return text
	}
	return ansi.TruncateLeft(text, w-width+1, "…")
}

func (a *App) View() string {
	var b strings.Builder
	inner := gridWidth() - 4
	b.WriteString(a.styles.display.Render(fitDisplay(a.display, inner)))
	b.WriteString("\n")
	b.WriteString(a.styles.status.Render(a.statusLine()))
	b.WriteString("\n\n")
	b.WriteString(a.renderGrid())
	if a.ui.ShowHelp {
		b.WriteString("\n\n")
		b.WriteString(a.help.View(a.keys))
	}
	return b.String()
}

func (a *App) statusLine() string {
	st := a.engine.State()
	if st.Pending.Symbol() == "" {
		return ""
	}
	return fitDisplay(st.First+" "+st.Pending.Symbol(), gridWidth())
}

func (a *App) renderGrid() string {
	rows := make([]string, 0, len(keypad.Grid))
	for _, row := range keypad.Grid {
		cells := make([]string, 0, len(row)*2)
		for i, btn := range row {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", cellGap))
			}
			cells = append(cells, a.buttonStyle(btn).Render(btn.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, strings.Repeat("\n", rowStride))
}

func (a *App) buttonStyle(btn keypad.Button) lipgloss.Style {
	var s lipgloss.Style
	switch btn.Kind() {
	case keypad.ActionOperator:
		s = a.styles.op
	case keypad.ActionEquals:
		s = a.styles.equals
	case keypad.ActionClear, keypad.ActionBackspace:
		s = a.styles.clear
	default:
		s = a.styles.digit
	}
	if btn.Label == a.pressed {
		s = s.Reverse(true)
	}
	return s
}
