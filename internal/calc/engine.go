// Package calc implements a button-driven calculator. Input is strictly
// sequential: each operator press resolves the previously pending operator
// before recording the new one, so there is no precedence.
package calc

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// State is the complete arithmetic state of a calculator.
type State struct {
	Display            string
	Operand1           float64
	Operator           Operator
	AwaitingNewOperand bool
	SciMode            bool
}

// NewState returns the state of a freshly started calculator.
func NewState() State {
	return State{
		Display:            "0",
		Operator:           OpAdd,
		AwaitingNewOperand: true,
	}
}

// Reset returns a cleared copy of s. The keypad mode survives clearing.
func Reset(s State) State {
	n := NewState()
	n.SciMode = s.SciMode
	return n
}

// Engine interprets key presses. It is not safe for concurrent use,
// each session should have its own Engine.
type Engine struct {
	state   State
	pending bool // operator was entered by the user
	err     error
	tape    tape
	log     *log.Logger
}

// NewEngine creates a cleared calculator.
func NewEngine() *Engine {
	return &Engine{state: NewState()}
}

// SetLogger enables logging of key presses and recovered errors.
// Passing nil turns logging off.
func (e *Engine) SetLogger(l *log.Logger) {
	e.log = l
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Err returns the cause of the current error display, or nil.
func (e *Engine) Err() error {
	return e.err
}

// Pending reports the operator waiting for its second operand, if the user
// has entered one.
func (e *Engine) Pending() (Operator, bool) {
	return e.state.Operator, e.pending
}

// Tape returns the operations resolved during this session, oldest first.
func (e *Engine) Tape() []TapeEntry {
	return e.tape.entries()
}

// Handle processes a wire token and returns the new display.
// Unknown tokens are ignored.
func (e *Engine) Handle(token string) string {
	k, ok := ParseKey(token)
	if !ok {
		e.logf("ignoring unknown token %q", token)
		return e.state.Display
	}
	return e.Press(k)
}

// Press processes a key and returns the new display.
// Keys that are on no keypad are ignored.
func (e *Engine) Press(k Key) string {
	if !k.valid() {
		e.logf("ignoring invalid key %+v", k)
		return e.state.Display
	}
	before := e.state.Display
	e.press(k)
	e.logf("press %q: %q -> %q", k, before, e.state.Display)
	return e.state.Display
}

func (e *Engine) press(k Key) {
	if e.state.Display == ErrorDisplay {
		// Any key leaves the error state.
		e.clear()
		return
	}
	switch k.Kind {
	case KindClear:
		e.clear()
	case KindDigit:
		e.digit(k.Digit)
	case KindDelete:
		e.rubout()
	case KindConstant:
		e.show(Format(Constant(k.Const)))
		e.state.AwaitingNewOperand = true
	case KindUnary:
		e.unary(k.Func)
	case KindBinary:
		e.binary(k.Op)
	case KindEquals:
		e.equals()
	default:
		panic(fmt.Sprintf("unhandled key kind %d", int(k.Kind)))
	}
}

// clear resets the calculator.
func (e *Engine) clear() {
	e.state = Reset(e.state)
	e.pending = false
	e.err = nil
}

// digit processes an input digit or decimal point.
func (e *Engine) digit(d byte) {
	s := &e.state
	if s.AwaitingNewOperand || s.Display == "0" {
		if d == '.' {
			s.Display = "0."
		} else {
			s.Display = string(d)
		}
		s.AwaitingNewOperand = false
		return
	}
	if d == '.' && strings.IndexByte(s.Display, '.') >= 0 {
		return
	}
	s.Display += string(d)
}

// rubout undoes the last typed character.
func (e *Engine) rubout() {
	s := &e.state
	if s.AwaitingNewOperand {
		return
	}
	d := s.Display[:len(s.Display)-1]
	if d == "" || d == "-" {
		d = "0"
	}
	s.Display = d
}

// unary applies fn to the display.
func (e *Engine) unary(fn Func) {
	if x, ok := e.current(); ok {
		e.show(ApplyUnary(fn, x))
	}
	e.state.AwaitingNewOperand = true
}

// binary resolves the pending operator and makes op the new one.
func (e *Engine) binary(op Operator) {
	s := &e.state
	if e.resolve() {
		s.Operand1, _ = parseDisplay(s.Display)
	} else {
		s.Operand1 = 0
	}
	s.Operator = op
	s.AwaitingNewOperand = true
	e.pending = true
}

// equals resolves the pending operator and ends the chain.
func (e *Engine) equals() {
	e.resolve()
	s := &e.state
	s.Operand1 = 0
	s.Operator = OpAdd
	s.AwaitingNewOperand = true
	e.pending = false
}

// resolve applies the pending operator to Operand1 and the display.
// It reports whether the result is a number.
func (e *Engine) resolve() bool {
	s := &e.state
	b, ok := e.current()
	if !ok {
		return false
	}
	text, err := ApplyBinary(s.Operand1, b, s.Operator)
	if e.pending {
		e.tape.add(TapeEntry{A: s.Operand1, Op: s.Operator, B: b, Result: text})
	}
	return e.show(text, err)
}

// current parses the display.
func (e *Engine) current() (float64, bool) {
	x, err := parseDisplay(e.state.Display)
	if err != nil {
		e.fail(err)
		return 0, false
	}
	return x, true
}

// show sets the display, or enters the error state if err is non-nil.
func (e *Engine) show(text string, err error) bool {
	if err != nil {
		e.fail(err)
		return false
	}
	e.state.Display = text
	return true
}

func (e *Engine) fail(err error) {
	e.err = err
	e.state.Display = ErrorDisplay
	e.logf("recovered: %v", err)
}

// Paste loads a number into the display as if it had been computed.
// It reports whether text was accepted.
func (e *Engine) Paste(text string) bool {
	if e.state.Display == ErrorDisplay {
		return false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return false
	}
	out, err := Format(x)
	if err != nil {
		return false
	}
	e.state.Display = out
	e.state.AwaitingNewOperand = true
	return true
}

// Keypad returns the keypad of the current mode.
func (e *Engine) Keypad() Keypad {
	if e.state.SciMode {
		return KeypadScientific
	}
	return KeypadStandard
}

// ToggleMode switches between the standard and scientific keypads.
// The arithmetic state is not touched.
func (e *Engine) ToggleMode() Keypad {
	e.state.SciMode = !e.state.SciMode
	kp := e.Keypad()
	e.logf("keypad %v", kp)
	return kp
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.log != nil {
		e.log.Printf(format, args...)
	}
}
