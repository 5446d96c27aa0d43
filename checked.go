package arith

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the checked operations.
var (
	ErrOverflow = errors.New("integer overflow")
	ErrNegative = errors.New("negative operand")
)

// OpError records a failed checked operation and its operands.
type OpError struct {
	Op  string // "sum" or "square"
	X   int64
	Y   int64 // unused for unary operations
	Err error
}

func (e *OpError) Error() string {
	if e.Op == "square" {
		return fmt.Sprintf("arith: %s(%d): %v", e.Op, e.X, e.Err)
	}
	return fmt.Sprintf("arith: %s(%d, %d): %v", e.Op, e.X, e.Y, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// CheckedSum returns x + y, or an *OpError wrapping ErrOverflow when the
// result does not fit in T.
func CheckedSum[T Integer](x, y T) (T, error) {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		return 0, &OpError{Op: "sum", X: int64(x), Y: int64(y), Err: ErrOverflow}
	}
	return s, nil
}

// CheckedSquare returns x*x. Negative x yields ErrNegative and a square
// that does not fit in T yields ErrOverflow, both wrapped in *OpError.
func CheckedSquare[T Integer](x T) (T, error) {
	sq, ok := SquareIfPositive(x)
	if !ok {
		return 0, &OpError{Op: "square", X: int64(x), Err: ErrNegative}
	}
	if x != 0 && sq/x != x {
		return 0, &OpError{Op: "square", X: int64(x), Err: ErrOverflow}
	}
	return sq, nil
}
