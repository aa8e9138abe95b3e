package keypad

// Button is an on-screen key. Key is what it sends through Parse.
type Button struct {
	Label string
	Key   string
}

// Kind groups buttons for styling.
func (b Button) Kind() Action {
	ev, _ := Parse(b.Key)
	return ev.Action
}

// Grid is the on-screen keypad, row by row.
var Grid = [][]Button{
	{{"C", "Escape"}, {"⌫", "Backspace"}, {"/", "/"}, {"*", "*"}},
	{{"7", "7"}, {"8", "8"}, {"9", "9"}, {"-", "-"}},
	{{"4", "4"}, {"5", "5"}, {"6", "6"}, {"+", "+"}},
	{{"1", "1"}, {"2", "2"}, {"3", "3"}, {"=", "Enter"}},
	{{"0", "0"}, {".", "."}},
}

// Columns is the widest row of Grid.
func Columns() int {
	n := 0
	for _, row := range Grid {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}
