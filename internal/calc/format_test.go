package calc

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{-5, "-5"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{123.456, "123.456"},
		{0.30000000000000004, "0.30000000000000004"},
		{9999999999, "9999999999"},
		{1e10, "1.000000e+10"},
		{1e11, "1.000000e+11"},
		{-1234560000000, "-1.234560e+12"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.500000e-07"},
		{-2.5e-9, "-2.500000e-09"},
		{math.MaxFloat64, "1.797693e+308"},
	}
	for _, test := range tests {
		got, err := Format(test.in)
		if err != nil {
			t.Errorf("Format(%v): unexpected error %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Format(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestFormatNonFinite(t *testing.T) {
	for _, x := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		got, err := Format(x)
		if got != ErrorDisplay {
			t.Errorf("Format(%v) = %q, want %q", x, got, ErrorDisplay)
		}
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("Format(%v): wrong error %v", x, err)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	values := []float64{
		0, 1, -1, 42, 1e9, 9999999999.5, 0.1, 1.0 / 3, -2.0 / 3, math.Pi,
		123456.789, 0.000123, 1e10, 4.2e13, 1.0 / 7e8, -6.02214076e23,
	}
	for _, x := range values {
		first, err := Format(x)
		if err != nil {
			t.Fatalf("Format(%v): %v", x, err)
		}
		y, err := strconv.ParseFloat(first, 64)
		if err != nil {
			t.Fatalf("output %q of Format(%v) does not parse: %v", first, x, err)
		}
		second, _ := Format(y)
		if second != first {
			t.Errorf("Format not idempotent for %v: %q then %q", x, first, second)
		}
	}
}

func TestFormatLowerBoundary(t *testing.T) {
	first, _ := Format(9.9999999e-7)
	if first != "1.000000e-06" {
		t.Fatalf("Format(9.9999999e-7) = %q", first)
	}
	y, err := parseDisplay(first)
	if err != nil {
		t.Fatal(err)
	}
	// The rounded value is in range, so it switches to plain notation.
	if second, _ := Format(y); second != "0.000001" {
		t.Fatalf("Format(%v) = %q, want %q", y, second, "0.000001")
	}
}

func TestParseDisplay(t *testing.T) {
	for _, s := range []string{"0", "0.", "-12.5", "1.000000e+11"} {
		if _, err := parseDisplay(s); err != nil {
			t.Errorf("parseDisplay(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", ".", ErrorDisplay, "1..2"} {
		if _, err := parseDisplay(s); !errors.Is(err, ErrParse) {
			t.Errorf("parseDisplay(%q): wrong error %v", s, err)
		}
	}
}
