package calc

import "fmt"

const tapeLimit = 100

// TapeEntry records one resolved binary operation.
type TapeEntry struct {
	A, B   float64
	Op     Operator
	Result string
}

func (t TapeEntry) String() string {
	return fmt.Sprintf("%s %v %s = %s", formatOperand(t.A), t.Op, formatOperand(t.B), t.Result)
}

func formatOperand(x float64) string {
	s, _ := Format(x)
	return s
}

// tape keeps the most recent entries.
type tape struct {
	list []TapeEntry
}

func (t *tape) add(e TapeEntry) {
	if len(t.list) == tapeLimit {
		copy(t.list, t.list[1:])
		t.list = t.list[:tapeLimit-1]
	}
	t.list = append(t.list, e)
}

func (t *tape) entries() []TapeEntry {
	return append([]TapeEntry(nil), t.list...)
}
