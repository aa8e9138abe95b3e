package replay

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/keypad"
)

// ErrMismatch is returned when the final display differs from Expect.
var ErrMismatch = errors.New("display mismatch")

// Result is what a replay produced.
type Result struct {
	Writes  []string
	Display string
}

// Run feeds the script through a fresh engine. Every display write is
// echoed to w as one line. opts.Sink and opts.Scheduler are replaced.
func Run(s Script, opts calc.Options, w io.Writer) (Result, error) {
	var res Result
	var werr error
	sched := calc.NewManualScheduler()
	opts.Scheduler = sched
	opts.Sink = calc.SinkFunc(func(text string) {
		res.Writes = append(res.Writes, text)
		if w != nil && werr == nil {
			_, werr = fmt.Fprintln(w, text)
		}
	})
	e := calc.New(opts)

	for _, st := range s.Steps {
		if st.Wait > 0 {
			sched.Advance(st.Wait)
			continue
		}
		for _, k := range strings.Fields(st.Keys) {
			keypad.Press(e, k)
		}
	}
	res.Display = e.Display()
	if werr != nil {
		return res, fmt.Errorf("write output: %w", werr)
	}

	if s.Expect != nil && *s.Expect != res.Display {
		return res, fmt.Errorf("%w: got %q, want %q", ErrMismatch, res.Display, *s.Expect)
	}
	return res, nil
}
