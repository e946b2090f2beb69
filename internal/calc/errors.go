package calc

import "errors"

// These errors are recovered inside the engine and shown as ErrorDisplay.
// Engine.Err returns the most recent one, wrapped with the operands involved.
var (
	ErrDivideByZero = errors.New("division by zero")
	ErrDomain       = errors.New("domain error")
	ErrOverflow     = errors.New("overflow")
	ErrParse        = errors.New("malformed number")
)
