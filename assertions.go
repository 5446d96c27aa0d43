package arith

import (
	"fmt"
	"strings"
	"testing"
)

// AssertLaws verifies that every law in laws held in report.
//
// Failures print the recorded counterexample:
//
//	Associative broken by [a b c]: 7 != 8
func AssertLaws(t testing.TB, report LawReport, laws ...Law) {
	t.Helper()

	var missing []string
	for _, law := range laws {
		if report.Holds(law) {
			continue
		}
		line := string(law)
		for _, ce := range report.Failures {
			if ce.Law == law {
				line = formatCounterexample(ce)
				break
			}
		}
		missing = append(missing, "  "+line)
	}

	if len(missing) > 0 {
		t.Errorf("%s: laws do not hold over %d samples:\n%s",
			report.Op, report.Samples, strings.Join(missing, "\n"))
		return
	}

	t.Logf("✓ %s: %v hold over %d samples", report.Op, laws, report.Samples)
}

// AssertSumChannels checks that SumInto returns x + y and stores the same
// value in its out-parameter.
func AssertSumChannels[T Integer](t testing.TB, x, y T) {
	t.Helper()

	want := x + y
	var stored T
	got := SumInto(x, y, &stored)

	if got != want {
		t.Errorf("SumInto(%d, %d) returned %d, want %d", x, y, got, want)
	}
	if stored != want {
		t.Errorf("SumInto(%d, %d) stored %d, want %d", x, y, stored, want)
	}
}

// AssertSquareDomain checks that SquareInto succeeds exactly for x >= 0
// and yields x*x when it does. The out-parameter is only read on success.
func AssertSquareDomain[T Integer](t testing.TB, x T) {
	t.Helper()

	var sq T
	ok := SquareInto(x, &sq)

	if wantOK := x >= 0; ok != wantOK {
		t.Errorf("SquareInto(%d) = %v, want %v", x, ok, wantOK)
		return
	}
	if ok && sq != x*x {
		t.Errorf("SquareInto(%d) stored %d, want %d", x, sq, x*x)
	}
}

// AssertAdditionCopy checks that a.Copy() carries the same operands and
// total as a, and that the total equals X() + Y().
func AssertAdditionCopy[T Integer](t testing.TB, a Addition[T]) {
	t.Helper()

	c := a.Copy()
	if c.X() != a.X() || c.Y() != a.Y() {
		t.Errorf("Copy() operands = (%d, %d), want (%d, %d)", c.X(), c.Y(), a.X(), a.Y())
	}
	if c.Sum() != a.Sum() {
		t.Errorf("Copy().Sum() = %d, want %d", c.Sum(), a.Sum())
	}
	if a.Sum() != a.X()+a.Y() {
		t.Errorf("Sum() = %d, want %d", a.Sum(), a.X()+a.Y())
	}
}

func formatCounterexample(ce Counterexample) string {
	return fmt.Sprintf("%s broken by %v: %d != %d", ce.Law, ce.Operands, ce.Left, ce.Right)
}
