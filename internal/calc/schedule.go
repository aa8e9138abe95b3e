package calc

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs f once after d. The returned func cancels the task if it
// has not run yet.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

// TimerScheduler schedules on real wall-clock timers.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// ManualScheduler is a virtual clock. Tasks only run when Advance moves the
// clock past their due time, on the caller's goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	due time.Duration
	seq int
	f   func()
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTask{due: s.now + d, seq: s.seq, f: f}
	s.tasks = append(s.tasks, t)
	return func() { s.remove(t) }
}

func (s *ManualScheduler) remove(t *manualTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.tasks {
		if cur == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d and runs every task that became due,
// earliest first.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due, rest []*manualTask
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.tasks = rest
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.f()
	}
}

// Pending reports how many tasks are still waiting.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Now returns the virtual elapsed time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}
