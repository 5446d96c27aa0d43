// Package arith provides small integer operations with explicit result
// channels, an immutable Addition value, a process-exit helper and a
// fixed registry of valid names.
//
// # Overview
//
// Every operation is generic over the signed integer types. The reference
// width is int32; instantiate with int32 to get the reference behavior:
//
//	s := arith.Sum[int32](3, 4) // 7
//
// The unchecked operations wrap on overflow per Go's two's-complement
// semantics. They never promote to a wider type and never saturate:
//
//	arith.Sum[int32](math.MaxInt32, 1) // math.MinInt32
//
// # Result Channels
//
// Sum and SquareIfPositive return their results. SumInto and SquareInto
// also write the result through a pointer, for call sites that observe a
// stored value as well as a returned one:
//
//	var out int32
//	arith.SumInto(3, 4, &out) // returns 7, out == 7
//
//	if arith.SquareInto(x, &out) {
//	    use(out)
//	}
//
// SquareInto does not touch out for negative input. Never read out unless
// it returned true.
//
// # Checked Operations
//
// CheckedSum and CheckedSquare report overflow instead of wrapping:
//
//	_, err := arith.CheckedSum[int32](math.MaxInt32, 1)
//	errors.Is(err, arith.ErrOverflow) // true
//
// # Addition
//
// Addition stores x, y and their sum, computed once at construction:
//
//	a := arith.NewAddition(2, 3)
//	b := a.Copy()
//	a.Sum(), b.Sum() // 5, 5
//
// Addition has no mutating methods. Copies share nothing.
//
// # Process Exit
//
// FinishPositively ends the process with status 0 for non-negative input
// and 1 otherwise. It never returns; test it from a subprocess. ExitStatus
// exposes the same mapping as a pure function.
//
// # Valid Names
//
// DefaultNames returns the fixed registry {Ricardo, Herminia, Manuel,
// Paula}. Pass the registry to consumers instead of reaching for it
// globally:
//
//	func greet(names arith.NameRegistry, who string) bool {
//	    return names.Contains(who)
//	}
//
// # Laws
//
// VerifyLaws checks a binary operation for commutativity, associativity
// and a zero identity over a sample set, and LawRegistry records the
// results:
//
//	report, _ := arith.VerifyLaws("sum", arith.Sum[int32], samples)
//	registry.Register(report)
//	registry.Require("sum", arith.Commutative, arith.Associative)
//
// # Testing
//
// Assertion helpers check the contracts from a caller's tests:
//
//	func TestMyInputs(t *testing.T) {
//	    arith.AssertSumChannels[int32](t, 3, 4)
//	    arith.AssertSquareDomain[int32](t, -7)
//	    arith.AssertLaws(t, report, arith.AllLaws...)
//	}
//
// # Concurrency
//
// Everything except FinishPositively is safe for concurrent use without
// synchronization. Stress runs an operation across worker goroutines to
// check that in tests.
package arith
