package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Engine: config.EngineConfig{ResetDelay: 2 * time.Second, CancellableReset: true},
		UI:     config.UIConfig{Accent: "#89b4fa", ShowHelp: true, Mouse: true},
	}
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func send(t *testing.T, a *App, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

func typeKeys(t *testing.T, a *App, keys ...string) tea.Cmd {
	t.Helper()
	msgs := make([]tea.Msg, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, keyMsg(k))
	}
	return send(t, a, msgs...)
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// buttonPos returns the centre of the button at grid row r, column c.
func buttonPos(r, c int) (int, int) {
	return c*(cellWidth+cellGap) + cellWidth/2, gridTop + r*rowStride
}

func TestKeyboardChaining(t *testing.T) {
	a := New(testConfig())
	typeKeys(t, a, "1", "2", "+", "7", "-", "1", "enter")
	require.Equal(t, "18", a.Display())
	require.Contains(t, a.View(), "18")
}

func TestEqualsKeyAndBackspace(t *testing.T) {
	a := New(testConfig())
	typeKeys(t, a, "9", "9", "backspace", "*", "3", "=")
	require.Equal(t, "27", a.Display())

	typeKeys(t, a, "esc")
	require.Equal(t, "0", a.Display())
	require.Equal(t, calc.InitialState(), a.engine.State())
}

func TestUnknownKeysIgnored(t *testing.T) {
	a := New(testConfig())
	typeKeys(t, a, "4", "x", "%")
	require.Equal(t, "4", a.Display())
}

func TestQuit(t *testing.T) {
	a := New(testConfig())
	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = a.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	a := New(testConfig())
	require.False(t, a.help.ShowAll)
	typeKeys(t, a, "?")
	require.True(t, a.help.ShowAll)
	require.Contains(t, a.View(), "digits")
}

func TestMouseClicksButtons(t *testing.T) {
	a := New(testConfig())
	// 7 * 6 =
	x, y := buttonPos(1, 0)
	send(t, a, click(x, y))
	x, y = buttonPos(0, 3)
	send(t, a, click(x, y))
	x, y = buttonPos(2, 2)
	send(t, a, click(x, y))
	x, y = buttonPos(3, 3)
	send(t, a, click(x, y))
	require.Equal(t, "42", a.Display())
	require.Equal(t, "=", a.pressed)
}

func TestMouseMissesAndReleasesIgnored(t *testing.T) {
	a := New(testConfig())
	x, y := buttonPos(1, 0)
	send(t, a,
		click(x, y+1),       // blank line between rows
		click(cellWidth, y), // gap between columns
		click(x, 0),         // display box
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	)
	require.Equal(t, "0", a.Display())

	x, y = buttonPos(4, 3) // row 4 has two buttons
	send(t, a, click(x, y))
	require.Equal(t, "0", a.Display())
}

func TestButtonAtCoversGrid(t *testing.T) {
	b, ok := buttonAt(buttonPos(4, 1))
	require.True(t, ok)
	require.Equal(t, ".", b.Label)

	b, ok = buttonAt(buttonPos(0, 1))
	require.True(t, ok)
	require.Equal(t, "Backspace", b.Key)
}

func TestDivideByZeroSchedulesTick(t *testing.T) {
	a := New(testConfig())
	typeKeys(t, a, "5", "/", "0")
	cmd := typeKeys(t, a, "enter")
	require.Equal(t, calc.Apology, a.Display())
	require.NotNil(t, cmd)
	require.Len(t, a.sched.live, 1)

	// deliver the tick directly instead of waiting
	var id int
	for k := range a.sched.live {
		id = k
	}
	send(t, a, deferredMsg{id: id})
	require.Equal(t, "0", a.Display())
	require.Equal(t, calc.InitialState(), a.engine.State())
	require.Empty(t, a.sched.live)
}

func TestClearCancelsPendingTick(t *testing.T) {
	a := New(testConfig())
	typeKeys(t, a, "5", "/", "0", "enter")
	var id int
	for k := range a.sched.live {
		id = k
	}
	typeKeys(t, a, "esc", "3", "+", "4")
	send(t, a, deferredMsg{id: id})
	require.Equal(t, "4", a.Display())
}

func TestUncancellableTickStillFires(t *testing.T) {
	cfg := testConfig()
	cfg.Engine.CancellableReset = false
	a := New(cfg)
	typeKeys(t, a, "5", "/", "0", "enter")
	var id int
	for k := range a.sched.live {
		id = k
	}
	typeKeys(t, a, "esc", "3", "+", "4")
	send(t, a, deferredMsg{id: id})
	require.Equal(t, "0", a.Display())
}

func TestStatusLineShowsPendingOperator(t *testing.T) {
	a := New(testConfig())
	typeKeys(t, a, "1", "2", "*")
	require.Equal(t, "12 *", a.statusLine())
	typeKeys(t, a, "2", "enter")
	require.Equal(t, "", a.statusLine())
}

func TestLongDisplayKeepsTail(t *testing.T) {
	a := New(testConfig())
	typeKeys(t, a, strings.Split("12345678901234567890123", "")...)
	view := a.View()
	require.Contains(t, view, "…")
	require.Contains(t, view, "0123")
	require.NotContains(t, view, "12345678901234567890123")
}

func TestConfigMsgUpdatesUI(t *testing.T) {
	a := New(testConfig())
	send(t, a, ConfigMsg(config.UIConfig{Accent: "#f38ba8", ShowHelp: false}))
	require.Equal(t, "#f38ba8", a.ui.Accent)
	require.NotContains(t, a.View(), "quit")
}

func TestWindowSize(t *testing.T) {
	a := New(testConfig())
	send(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Equal(t, 80, a.width)
	require.Equal(t, 80, a.help.Width)
}
