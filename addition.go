package arith

import "fmt"

// Addition is an immutable sum of two integers.
// The total is computed once by NewAddition and never recomputed.
type Addition[T Integer] struct {
	x, y  T
	total T
}

// NewAddition creates an Addition holding x, y and x + y.
func NewAddition[T Integer](x, y T) Addition[T] {
	return Addition[T]{
		x:     x,
		y:     y,
		total: Sum(x, y),
	}
}

// X returns the first operand.
func (a Addition[T]) X() T { return a.x }

// Y returns the second operand.
func (a Addition[T]) Y() T { return a.y }

// Sum returns the stored total.
func (a Addition[T]) Sum() T { return a.total }

// Copy returns an independent Addition with the same operands and total.
func (a Addition[T]) Copy() Addition[T] {
	return Addition[T]{
		x:     a.x,
		y:     a.y,
		total: a.total,
	}
}

// String renders the addition as "x + y = total".
func (a Addition[T]) String() string {
	return fmt.Sprintf("%d + %d = %d", a.x, a.y, a.total)
}
