package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// deferredMsg delivers a scheduled task back onto the event loop.
type deferredMsg struct {
	id int
}

type tickRequest struct {
	id    int
	delay time.Duration
}

// tickScheduler turns engine timers into tea.Tick commands so deferred work
// runs inside Update like any other input. It is only touched from the
// event loop.
type tickScheduler struct {
	next   int
	live   map[int]func()
	queued []tickRequest
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{live: make(map[int]func())}
}

func (s *tickScheduler) AfterFunc(d time.Duration, f func()) func() {
	s.next++
	id := s.next
	s.live[id] = f
	s.queued = append(s.queued, tickRequest{id: id, delay: d})
	return func() { delete(s.live, id) }
}

// cmds drains timers scheduled since the last call.
func (s *tickScheduler) cmds() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, q := range s.queued {
		id := q.id
		cmds = append(cmds, tea.Tick(q.delay, func(time.Time) tea.Msg {
			return deferredMsg{id: id}
		}))
	}
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *tickScheduler) fire(id int) {
	f, ok := s.live[id]
	if !ok {
		return
	}
	delete(s.live, id)
	f()
}
