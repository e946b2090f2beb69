package calc

import (
	"errors"
	"testing"
)

func TestApplyBinary(t *testing.T) {
	tests := []struct {
		a, b float64
		op   Operator
		want string
		err  error
	}{
		{3, 4, OpAdd, "7", nil},
		{3, 4, OpSub, "-1", nil},
		{3, 4, OpMul, "12", nil},
		{3, 4, OpDiv, "0.75", nil},
		{3, 0, OpDiv, ErrorDisplay, ErrDivideByZero},
		{0, 0, OpDiv, ErrorDisplay, ErrDivideByZero},
		{2, 8, OpPow, "256", nil},
		{9, 0.5, OpPow, "3", nil},
		{2, -1, OpPow, "0.5", nil},
		{-8, 1.0 / 3, OpPow, ErrorDisplay, ErrOverflow},
		{10, 400, OpPow, ErrorDisplay, ErrOverflow},
		{1e300, 1e10, OpMul, ErrorDisplay, ErrOverflow},
		{5, 7, OpNone, "7", nil},
		{0, 2.5, OpAdd, "2.5", nil},
	}
	for _, test := range tests {
		got, err := ApplyBinary(test.a, test.b, test.op)
		if got != test.want {
			t.Errorf("%v %v %v = %q, want %q", test.a, test.op, test.b, got, test.want)
		}
		if test.err == nil && err != nil {
			t.Errorf("%v %v %v: unexpected error %v", test.a, test.op, test.b, err)
		}
		if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("%v %v %v: got error %v, want %v", test.a, test.op, test.b, err, test.err)
		}
	}
}

func TestApplyUnary(t *testing.T) {
	tests := []struct {
		fn   Func
		x    float64
		want string
		err  error
	}{
		{FnSin, 0, "0", nil},
		{FnSin, 90, "1", nil},
		{FnSin, -90, "-1", nil},
		{FnCos, 0, "1", nil},
		{FnCos, 180, "-1", nil},
		{FnTan, 0, "0", nil},
		{FnTan, 90, ErrorDisplay, ErrDomain},
		{FnTan, -90, ErrorDisplay, ErrDomain},
		{FnTan, 450, ErrorDisplay, ErrDomain},
		{FnLog, 1, "0", nil},
		{FnLog, 0, ErrorDisplay, ErrDomain},
		{FnLog, -3, ErrorDisplay, ErrDomain},
		{FnSqrt, 0, "0", nil},
		{FnSqrt, 81, "9", nil},
		{FnSqrt, -1, ErrorDisplay, ErrDomain},
		{FnPercent, 50, "0.5", nil},
		{FnPercent, -7, "-0.07", nil},
		{FnSignFlip, 5, "-5", nil},
		{FnSignFlip, -0.5, "0.5", nil},
	}
	for _, test := range tests {
		got, err := ApplyUnary(test.fn, test.x)
		if got != test.want {
			t.Errorf("%v(%v) = %q, want %q", test.fn, test.x, got, test.want)
		}
		if test.err == nil && err != nil {
			t.Errorf("%v(%v): unexpected error %v", test.fn, test.x, err)
		}
		if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("%v(%v): got error %v, want %v", test.fn, test.x, err, test.err)
		}
	}
}

func TestTokens(t *testing.T) {
	toks := Tokens()
	if len(toks) != 28 {
		t.Fatalf("wrong token count %d: %q", len(toks), toks)
	}
	for _, tok := range toks {
		k, ok := ParseKey(tok)
		if !ok {
			t.Fatalf("ParseKey(%q) failed", tok)
		}
		if k.String() != tok {
			t.Errorf("key %+v prints as %q, want %q", k, k.String(), tok)
		}
	}
	for _, tok := range []string{"", "x", "10", "ac", "ln", "^"} {
		if _, ok := ParseKey(tok); ok {
			t.Errorf("ParseKey(%q) succeeded", tok)
		}
	}
}

func TestParseKeyKinds(t *testing.T) {
	tests := map[string]Key{
		"7":         DigitKey('7'),
		".":         DigitKey('.'),
		TokenClear:  ClearKey,
		TokenEquals: EqualsKey,
		TokenDelete: DeleteKey,
		"x^y":       OpKey(OpPow),
		"/":         OpKey(OpDiv),
		"+/-":       FuncKey(FnSignFlip),
		"%":         FuncKey(FnPercent),
		"log":       FuncKey(FnLog),
		"pi":        ConstKey(ConstPi),
	}
	for tok, want := range tests {
		if got, _ := ParseKey(tok); got != want {
			t.Errorf("ParseKey(%q) = %+v, want %+v", tok, got, want)
		}
	}
}

func TestKeypad(t *testing.T) {
	std, sci := KeypadStandard, KeypadScientific
	if std.Toggle() != sci || sci.Toggle() != std {
		t.Fatal("Toggle does not alternate")
	}
	if n := len(std.Rows()); n != 5 {
		t.Fatalf("standard keypad has %d rows", n)
	}
	rows := sci.Rows()
	if len(rows) != 7 || rows[0][0] != "sin" || rows[2][0] != TokenClear {
		t.Fatalf("wrong scientific layout %q", rows)
	}

	for _, tok := range []string{"7", ".", "+/-", TokenEquals, TokenDelete} {
		if !std.Accepts(tok) || !sci.Accepts(tok) {
			t.Errorf("%q not accepted on both keypads", tok)
		}
	}
	for _, tok := range []string{"sin", "x^y", "pi", "e"} {
		if std.Accepts(tok) {
			t.Errorf("standard keypad accepts %q", tok)
		}
		if !sci.Accepts(tok) {
			t.Errorf("scientific keypad rejects %q", tok)
		}
	}

	// Every button must be a valid token.
	for _, row := range rows {
		for _, tok := range row {
			if _, ok := ParseKey(tok); !ok {
				t.Errorf("keypad button %q is not a token", tok)
			}
		}
	}

	// Rows returns a copy.
	rows[0][0] = "x"
	if sci.Rows()[0][0] != "sin" {
		t.Fatal("Rows result aliases keypad layout")
	}
}
