package calc

// Keypad is a set of buttons offered by the front end.
type Keypad int

const (
	KeypadStandard Keypad = iota
	KeypadScientific
)

var (
	standardRows = [][]string{
		{TokenClear, "+/-", "%", "/"},
		{"7", "8", "9", "*"},
		{"4", "5", "6", "-"},
		{"1", "2", "3", "+"},
		{"0", ".", TokenEquals},
	}
	scientificRows = [][]string{
		{"sin", "cos", "tan", "log"},
		{"x^y", "sqrt", "e", "pi"},
	}
)

func (kp Keypad) String() string {
	if kp == KeypadScientific {
		return "scientific"
	}
	return "standard"
}

// Toggle returns the other keypad.
func (kp Keypad) Toggle() Keypad {
	if kp == KeypadScientific {
		return KeypadStandard
	}
	return KeypadScientific
}

// Rows returns the button layout, top row first. The scientific keypad
// puts its extra rows above the standard ones.
func (kp Keypad) Rows() [][]string {
	var rows [][]string
	if kp == KeypadScientific {
		rows = appendRows(rows, scientificRows)
	}
	return appendRows(rows, standardRows)
}

func appendRows(dst, src [][]string) [][]string {
	for _, row := range src {
		dst = append(dst, append([]string(nil), row...))
	}
	return dst
}

// Accepts reports whether token has a button on the keypad.
// Rubout is always available.
func (kp Keypad) Accepts(token string) bool {
	if token == TokenDelete {
		return true
	}
	for _, row := range kp.Rows() {
		for _, t := range row {
			if t == token {
				return true
			}
		}
	}
	return false
}
