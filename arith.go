package arith

import (
	"golang.org/x/exp/constraints"
)

// Integer is the set of signed integer types the operations accept.
// The reference width is int32.
type Integer interface {
	constraints.Signed
}

// Sum returns x + y.
//
// No overflow checking is performed: the result wraps per two's-complement
// arithmetic of T. Use CheckedSum to detect overflow.
func Sum[T Integer](x, y T) T {
	return x + y
}

// SumInto stores x + y in out and returns the same value.
// A nil out is allowed; only the return value is produced then.
func SumInto[T Integer](x, y T, out *T) T {
	s := Sum(x, y)
	if out != nil {
		*out = s
	}
	return s
}

// SquareIfPositive returns x*x and true when x >= 0.
// For negative x it returns the zero value and false.
//
// Squaring wraps per the native semantics of T.
func SquareIfPositive[T Integer](x T) (T, bool) {
	if x < 0 {
		return 0, false
	}
	return x * x, true
}

// SquareInto writes x*x to out and reports true when x >= 0.
//
// On the negative path out is not written. Its contents are unspecified to
// the caller and must not be read unless SquareInto returned true.
func SquareInto[T Integer](x T, out *T) bool {
	sq, ok := SquareIfPositive(x)
	if !ok {
		return false
	}
	if out != nil {
		*out = sq
	}
	return true
}
