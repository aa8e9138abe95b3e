package calc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DivideByZeroMarker is what Divide yields for a zero divisor.
const DivideByZeroMarker = "Snarky Error"

// Result is either a number or an opaque marker string.
type Result struct {
	value  float64
	marker string
}

// Number wraps a numeric result.
func Number(v float64) Result { return Result{value: v} }

// Marker wraps a non-numeric result.
func Marker(s string) Result { return Result{marker: s} }

func (r Result) IsNumber() bool { return r.marker == "" }

func (r Result) Float() float64 { return r.value }

// String renders numbers via FormatNumber and markers as-is.
func (r Result) String() string {
	if !r.IsNumber() {
		return r.marker
	}
	return FormatNumber(r.value)
}

func Add(a, b float64) float64      { return a + b }
func Subtract(a, b float64) float64 { return a - b }
func Multiply(a, b float64) float64 { return a * b }

// Divide returns DivideByZeroMarker when b is exactly zero.
func Divide(a, b float64) Result {
	if b == 0 {
		return Marker(DivideByZeroMarker)
	}
	return Number(a / b)
}

// Operate parses both operands and applies op. ok is false for OpNone.
func Operate(op Operator, a, b string) (res Result, ok bool) {
	x, y := ParseOperand(a), ParseOperand(b)
	switch op {
	case OpAdd:
		return Number(Add(x, y)), true
	case OpSubtract:
		return Number(Subtract(x, y)), true
	case OpMultiply:
		return Number(Multiply(x, y)), true
	case OpDivide:
		return Divide(x, y), true
	}
	return Result{}, false
}

// Round3 rounds to three decimal places, ties away from zero.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

var operandPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseOperand converts display text to a number. Blank text is 0,
// "12." is 12 and anything else unparseable is NaN.
func ParseOperand(s string) float64 {
	t := strings.TrimSpace(s)
	switch t {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if !operandPattern.MatchString(t) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// FormatNumber renders v in its shortest round-tripping decimal form.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// covers negative zero
		return "0"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
