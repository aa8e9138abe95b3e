// Package keypad normalises keyboard keys and button presses into calculator
// calls.
package keypad

import (
	"strings"

	"github.com/jask/jaskcalc/internal/calc"
)

// Calculator is the call set an input source drives.
type Calculator interface {
	AppendDigit(d string)
	AppendDecimalPoint()
	SetOperator(op calc.Operator)
	Evaluate()
	Backspace()
	Clear()
}

type Action string

const (
	ActionDigit     Action = "digit"
	ActionPoint     Action = "decimal_point"
	ActionOperator  Action = "operator"
	ActionEquals    Action = "equals"
	ActionBackspace Action = "backspace"
	ActionClear     Action = "clear"
)

// Event is one normalised user action. Value carries the digit or operator
// symbol.
type Event struct {
	Action Action
	Value  string
}

// named keys, matched case-insensitively
var namedKeys = map[string]Event{
	"enter":     {Action: ActionEquals},
	"backspace": {Action: ActionBackspace},
	"escape":    {Action: ActionClear},
	"esc":       {Action: ActionClear},
}

// KnownKeys lists the canonical key names accepted by Parse.
func KnownKeys() []string {
	return []string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		".", "+", "-", "*", "/", "=",
		"Enter", "Backspace", "Escape",
	}
}

// Parse maps a key name to an Event. Both browser-style names (Enter,
// Escape) and terminal names (enter, esc) are accepted.
func Parse(key string) (Event, bool) {
	if len(key) == 1 {
		c := key[0]
		switch {
		case c >= '0' && c <= '9':
			return Event{Action: ActionDigit, Value: key}, true
		case c == '.':
			return Event{Action: ActionPoint}, true
		case c == '=':
			return Event{Action: ActionEquals}, true
		}
		if _, ok := calc.ParseOperator(key); ok {
			return Event{Action: ActionOperator, Value: key}, true
		}
		return Event{}, false
	}
	ev, ok := namedKeys[strings.ToLower(key)]
	return ev, ok
}

// Apply invokes the matching calculator operation.
func (ev Event) Apply(c Calculator) {
	switch ev.Action {
	case ActionDigit:
		c.AppendDigit(ev.Value)
	case ActionPoint:
		c.AppendDecimalPoint()
	case ActionOperator:
		if op, ok := calc.ParseOperator(ev.Value); ok {
			c.SetOperator(op)
		}
	case ActionEquals:
		c.Evaluate()
	case ActionBackspace:
		c.Backspace()
	case ActionClear:
		c.Clear()
	}
}

// Press parses key and applies it. Unknown keys are ignored.
func Press(c Calculator, key string) bool {
	ev, ok := Parse(key)
	if !ok {
		return false
	}
	ev.Apply(c)
	return true
}
