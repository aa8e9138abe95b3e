package calc

// Operator is a queued binary operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var operatorSymbols = map[Operator]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

// ParseOperator maps a keypad symbol (+, -, *, /) to an Operator.
func ParseOperator(symbol string) (Operator, bool) {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op, true
		}
	}
	return OpNone, false
}

// Symbol returns the keypad symbol, or "" for OpNone.
func (o Operator) Symbol() string { return operatorSymbols[o] }

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}
