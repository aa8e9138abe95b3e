// Package calc holds the calculator state machine: operand entry, operator
// chaining and evaluation, plus the deferred reset after a division by zero.
package calc

import (
	"log"
	"strings"
	"sync"
	"time"
)

// Apology replaces the display when dividing by a zero entry.
const Apology = "Nice try, pal!"

// DefaultResetDelay is how long the apology stays before the engine clears.
const DefaultResetDelay = 2 * time.Second

// Sink receives the display text after every mutation. It is called with
// the engine lock held and must not call back into the engine.
type Sink interface {
	SetText(text string)
}

// SinkFunc adapts a func to Sink.
type SinkFunc func(text string)

func (f SinkFunc) SetText(text string) { f(text) }

// Options configures an Engine. The zero value is usable.
type Options struct {
	Sink      Sink
	Scheduler Scheduler
	// ResetDelay defaults to DefaultResetDelay.
	ResetDelay time.Duration
	// MaxDigits caps digits per entry; 0 means unbounded.
	MaxDigits int
	// CancellableReset lets Clear and a later divide-by-zero cancel a
	// pending reset. When false the reset fires unconditionally.
	CancellableReset bool
}

// State is a snapshot of the engine fields.
type State struct {
	Display string
	Pending Operator
	First   string
	Second  string
	Reset   bool
}

// InitialState is the state after New or Clear.
func InitialState() State {
	return State{Display: "0"}
}

// Engine is the calculator. Methods are safe for concurrent use so that a
// TimerScheduler may fire the deferred reset from its own goroutine.
type Engine struct {
	mu      sync.Mutex
	entry   string
	first   string
	second  string
	pending Operator
	reset   bool

	sink        Sink
	sched       Scheduler
	delay       time.Duration
	maxDigits   int
	cancellable bool

	resetGen    int
	cancelReset func()
}

func New(opts Options) *Engine {
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}
	if opts.MaxDigits < 0 {
		opts.MaxDigits = 0
	}
	e := &Engine{
		sink:        opts.Sink,
		sched:       opts.Scheduler,
		delay:       opts.ResetDelay,
		maxDigits:   opts.MaxDigits,
		cancellable: opts.CancellableReset,
	}
	e.clear()
	return e
}

// Display returns the current display text.
func (e *Engine) Display() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.entry
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Display: e.entry,
		Pending: e.pending,
		First:   e.first,
		Second:  e.second,
		Reset:   e.reset,
	}
}

// AppendDigit appends d to the entry, replacing a lone "0" or the previous
// operand when a new one is due.
func (e *Engine) AppendDigit(d string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fresh := e.entry == "0" || e.reset
	if !fresh && e.maxDigits > 0 && countDigits(e.entry)+countDigits(d) > e.maxDigits {
		return
	}
	if fresh {
		e.resetScreen()
	}
	e.entry += d
	e.push()
}

// AppendDecimalPoint adds "." unless the entry already has one.
func (e *Engine) AppendDecimalPoint() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.reset {
		e.resetScreen()
	}
	if e.entry == "" {
		e.entry = "0"
	}
	if !strings.Contains(e.entry, ".") {
		e.entry += "."
	}
	e.push()
}

// Backspace drops the last character; an empty entry becomes "0".
func (e *Engine) Backspace() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.entry != "" {
		r := []rune(e.entry)
		e.entry = string(r[:len(r)-1])
	}
	if e.entry == "" {
		e.entry = "0"
	}
	e.push()
}

// Clear resets every field to InitialState.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancellable {
		e.disarm()
	}
	e.clear()
	e.push()
}

// SetOperator queues op. A pending operation with a typed second operand is
// evaluated first, so "12 + 7 -" shows 19.
func (e *Engine) SetOperator(op Operator) {
	if op == OpNone {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending != OpNone && !e.reset {
		e.evaluate()
	}
	e.first = e.entry
	e.pending = op
	e.reset = true
	e.push()
}

// Evaluate applies the pending operator. It does nothing without a pending
// operator or before a second operand has been typed.
func (e *Engine) Evaluate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.evaluate() {
		e.push()
	}
}

func (e *Engine) evaluate() bool {
	if e.pending == OpNone || e.reset {
		return false
	}
	if e.pending == OpDivide && e.entry == "0" {
		e.entry = Apology
		e.arm()
		return true
	}
	e.second = e.entry
	res, ok := Operate(e.pending, e.first, e.second)
	if !ok {
		return false
	}
	if res.IsNumber() {
		e.entry = FormatNumber(Round3(res.Float()))
	} else {
		e.entry = res.String()
	}
	e.pending = OpNone
	return true
}

func (e *Engine) arm() {
	if e.cancellable {
		e.disarm()
	}
	e.resetGen++
	gen := e.resetGen
	log.Printf("calc: divide by zero, clearing in %s", e.delay)
	e.cancelReset = e.sched.AfterFunc(e.delay, func() { e.deferredClear(gen) })
}

func (e *Engine) disarm() {
	if e.cancelReset != nil {
		e.cancelReset()
		e.cancelReset = nil
	}
	e.resetGen++
}

func (e *Engine) deferredClear(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancellable && gen != e.resetGen {
		return
	}
	if gen == e.resetGen {
		e.cancelReset = nil
	}
	e.clear()
	e.push()
}

func (e *Engine) clear() {
	e.entry = "0"
	e.first = ""
	e.second = ""
	e.pending = OpNone
	e.reset = false
}

func (e *Engine) resetScreen() {
	e.entry = ""
	e.reset = false
}

func (e *Engine) push() {
	if e.sink != nil {
		e.sink.SetText(e.entry)
	}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
