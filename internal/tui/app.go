package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/keypad"
)

// ConfigMsg carries reloaded UI settings into a running program.
type ConfigMsg config.UIConfig

// App is the calculator screen. It is the engine's input adapter and its
// display sink.
type App struct {
	engine  *calc.Engine
	sched   *tickScheduler
	display string
	pressed string
	ui      config.UIConfig
	styles  styles
	keys    keyMap
	help    help.Model
	width   int
	height  int
}

func New(cfg config.Config) *App {
	a := &App{
		sched:   newTickScheduler(),
		display: "0",
		ui:      cfg.UI,
		styles:  newStyles(cfg.UI.Accent),
		keys:    newKeyMap(),
		help:    help.New(),
	}
	a.engine = calc.New(calc.Options{
		Sink:             calc.SinkFunc(func(text string) { a.display = text }),
		Scheduler:        a.sched,
		ResetDelay:       cfg.Engine.ResetDelay,
		MaxDigits:        cfg.Engine.MaxDigits,
		CancellableReset: cfg.Engine.CancellableReset,
	})
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
		a.press(m.String())
	case tea.MouseMsg:
		if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if b, ok := buttonAt(m.X, m.Y); ok {
			a.press(b.Key)
		}
	case deferredMsg:
		a.sched.fire(m.id)
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case ConfigMsg:
		a.ui = config.UIConfig(m)
		a.styles = newStyles(a.ui.Accent)
		log.Printf("tui: ui settings reloaded (accent %s)", a.ui.Accent)
	}
	return a, a.sched.cmds()
}

func (a *App) press(name string) {
	ev, ok := keypad.Parse(name)
	if !ok {
		return
	}
	ev.Apply(a.engine)
	a.pressed = ""
	if b, ok := buttonFor(ev); ok {
		a.pressed = b.Label
	}
}

// Display returns the last text pushed by the engine.
func (a *App) Display() string { return a.display }
