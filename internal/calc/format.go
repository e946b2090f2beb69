package calc

import (
	"fmt"
	"math"
	"strconv"
)

// ErrorDisplay is shown in place of a number after any failed operation.
const ErrorDisplay = "Error"

// Magnitudes outside [sciLower, sciUpper) are shown in exponent form.
const (
	sciUpper = 1e10
	sciLower = 1e-6
)

// Format renders x for the display.
func Format(x float64) (string, error) {
	switch {
	case math.IsInf(x, 0) || math.IsNaN(x):
		return ErrorDisplay, fmt.Errorf("%w: cannot display %v", ErrOverflow, x)
	case x == 0:
		return "0", nil // also covers -0
	}
	// The range test uses the unrounded value. Values just below sciLower
	// can round up to "1.000000e-06", which reads back as 0.000001.
	if ax := math.Abs(x); ax >= sciUpper || ax < sciLower {
		return strconv.FormatFloat(x, 'e', 6, 64), nil
	}
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', 0, 64), nil
	}
	return strconv.FormatFloat(x, 'f', -1, 64), nil
}

// parseDisplay reads back a display string.
func parseDisplay(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return x, nil
}
