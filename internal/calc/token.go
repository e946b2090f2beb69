package calc

import (
	"fmt"
	"sort"
)

// Wire tokens for the control keys.
const (
	TokenClear  = "AC"
	TokenEquals = "="
	TokenDelete = "DEL"
)

// Kind classifies a key press.
type Kind int

const (
	KindInvalid Kind = iota
	KindDigit
	KindClear
	KindDelete
	KindConstant
	KindUnary
	KindBinary
	KindEquals
)

// Operator is a two-operand operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
)

func (op Operator) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "x^y"
	default:
		panic(fmt.Sprintf("unknown operator %d", int(op)))
	}
}

// Func is a single-operand function applied to the display.
type Func int

const (
	FnSin Func = iota
	FnCos
	FnTan
	FnLog
	FnSqrt
	FnPercent
	FnSignFlip
)

func (fn Func) String() string {
	switch fn {
	case FnSin:
		return "sin"
	case FnCos:
		return "cos"
	case FnTan:
		return "tan"
	case FnLog:
		return "log"
	case FnSqrt:
		return "sqrt"
	case FnPercent:
		return "%"
	case FnSignFlip:
		return "+/-"
	default:
		panic(fmt.Sprintf("unknown function %d", int(fn)))
	}
}

// Const is a named constant key.
type Const int

const (
	ConstE Const = iota
	ConstPi
)

func (c Const) String() string {
	switch c {
	case ConstE:
		return "e"
	case ConstPi:
		return "pi"
	default:
		panic(fmt.Sprintf("unknown constant %d", int(c)))
	}
}

// Key is a parsed button press. Only the field matching Kind is meaningful.
type Key struct {
	Kind  Kind
	Digit byte // '0'-'9' or '.'
	Op    Operator
	Func  Func
	Const Const
}

// Key constructors.
var (
	ClearKey  = Key{Kind: KindClear}
	EqualsKey = Key{Kind: KindEquals}
	DeleteKey = Key{Kind: KindDelete}
)

func DigitKey(d byte) Key   { return Key{Kind: KindDigit, Digit: d} }
func OpKey(op Operator) Key { return Key{Kind: KindBinary, Op: op} }
func FuncKey(fn Func) Key   { return Key{Kind: KindUnary, Func: fn} }
func ConstKey(c Const) Key  { return Key{Kind: KindConstant, Const: c} }

// valid reports whether k is a key that exists on some keypad.
func (k Key) valid() bool {
	switch k.Kind {
	case KindDigit:
		return k.Digit == '.' || (k.Digit >= '0' && k.Digit <= '9')
	case KindClear, KindDelete, KindEquals:
		return true
	case KindConstant:
		return k.Const >= ConstE && k.Const <= ConstPi
	case KindUnary:
		return k.Func >= FnSin && k.Func <= FnSignFlip
	case KindBinary:
		return k.Op >= OpAdd && k.Op <= OpPow
	default:
		return false
	}
}

// String returns the wire token of the key.
func (k Key) String() string {
	switch k.Kind {
	case KindDigit:
		return string(k.Digit)
	case KindClear:
		return TokenClear
	case KindDelete:
		return TokenDelete
	case KindConstant:
		return k.Const.String()
	case KindUnary:
		return k.Func.String()
	case KindBinary:
		return k.Op.String()
	case KindEquals:
		return TokenEquals
	default:
		return "invalid"
	}
}

var keysByToken = make(map[string]Key)

func init() {
	for _, k := range allKeys() {
		keysByToken[k.String()] = k
	}
}

func allKeys() []Key {
	keys := []Key{ClearKey, EqualsKey, DeleteKey, DigitKey('.')}
	for d := byte('0'); d <= '9'; d++ {
		keys = append(keys, DigitKey(d))
	}
	for op := OpAdd; op <= OpPow; op++ {
		keys = append(keys, OpKey(op))
	}
	for fn := FnSin; fn <= FnSignFlip; fn++ {
		keys = append(keys, FuncKey(fn))
	}
	return append(keys, ConstKey(ConstE), ConstKey(ConstPi))
}

// ParseKey looks up a wire token.
func ParseKey(token string) (Key, bool) {
	k, ok := keysByToken[token]
	return k, ok
}

// Tokens returns all wire tokens in lexical order.
func Tokens() []string {
	list := make([]string, 0, len(keysByToken))
	for tok := range keysByToken {
		list = append(list, tok)
	}
	sort.Strings(list)
	return list
}
