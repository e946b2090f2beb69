package calc

import (
	"fmt"
	"math"
)

// tan is rejected when the cosine of its argument is this close to zero.
const tanPoleEpsilon = 1e-9

// ApplyUnary computes fn(x) and formats the result.
// Trigonometric functions take x in degrees, log is the natural logarithm.
func ApplyUnary(fn Func, x float64) (string, error) {
	switch fn {
	case FnSin:
		return Format(math.Sin(radians(x)))
	case FnCos:
		return Format(math.Cos(radians(x)))
	case FnTan:
		r := radians(x)
		if math.Abs(math.Cos(r)) < tanPoleEpsilon {
			return ErrorDisplay, fmt.Errorf("%w: tan(%v°) is undefined", ErrDomain, x)
		}
		return Format(math.Tan(r))
	case FnLog:
		if x <= 0 {
			return ErrorDisplay, fmt.Errorf("%w: log(%v)", ErrDomain, x)
		}
		return Format(math.Log(x))
	case FnSqrt:
		if x < 0 {
			return ErrorDisplay, fmt.Errorf("%w: sqrt(%v)", ErrDomain, x)
		}
		return Format(math.Sqrt(x))
	case FnPercent:
		return Format(x / 100)
	case FnSignFlip:
		return Format(-x)
	default:
		panic(fmt.Sprintf("unknown function %d", int(fn)))
	}
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// ApplyBinary computes a op b and formats the result.
// OpNone passes b through unchanged.
func ApplyBinary(a, b float64, op Operator) (string, error) {
	switch op {
	case OpAdd:
		return Format(a + b)
	case OpSub:
		return Format(a - b)
	case OpMul:
		return Format(a * b)
	case OpDiv:
		if b == 0 {
			return ErrorDisplay, fmt.Errorf("%w: %v / 0", ErrDivideByZero, a)
		}
		return Format(a / b)
	case OpPow:
		r := math.Pow(a, b)
		if math.IsInf(r, 0) || math.IsNaN(r) {
			return ErrorDisplay, fmt.Errorf("%w: %v ^ %v has no finite value", ErrOverflow, a, b)
		}
		return Format(r)
	default:
		return Format(b)
	}
}

// Constant returns the value of c.
func Constant(c Const) float64 {
	switch c {
	case ConstE:
		return math.E
	case ConstPi:
		return math.Pi
	default:
		panic(fmt.Sprintf("unknown constant %d", int(c)))
	}
}
