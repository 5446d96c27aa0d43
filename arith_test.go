package arith

import (
	"math"
	"math/rand"
	"testing"
)

// TestSum verifies Sum and both channels of SumInto.
func TestSum(t *testing.T) {
	tests := []struct {
		name string
		x, y int32
		want int32
	}{
		{"Positive", 3, 4, 7},
		{"Negative", -3, -4, -7},
		{"Mixed", -10, 4, -6},
		{"Zero", 0, 0, 0},
		{"Wraps at max", math.MaxInt32, 1, math.MinInt32},
		{"Wraps at min", math.MinInt32, -1, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.x, tt.y); got != tt.want {
				t.Errorf("Sum(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}

			var stored int32
			got := SumInto(tt.x, tt.y, &stored)
			if got != tt.want {
				t.Errorf("SumInto(%d, %d) returned %d, want %d", tt.x, tt.y, got, tt.want)
			}
			if stored != tt.want {
				t.Errorf("SumInto(%d, %d) stored %d, want %d", tt.x, tt.y, stored, tt.want)
			}
		})
	}
}

// TestSum_Random mirrors the classic rand-driven check: both channels
// agree with x + y for arbitrary inputs.
func TestSum_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		x, y := rng.Int31(), rng.Int31()
		AssertSumChannels(t, x, y)
	}
}

func TestSumInto_NilOut(t *testing.T) {
	if got := SumInto[int32](3, 4, nil); got != 7 {
		t.Errorf("SumInto(3, 4, nil) = %d, want 7", got)
	}
}

// TestSquareIfPositive covers the domain boundary and wrapping.
func TestSquareIfPositive(t *testing.T) {
	tests := []struct {
		name   string
		x      int32
		want   int32
		wantOK bool
	}{
		{"Positive", 5, 25, true},
		{"Zero boundary", 0, 0, true},
		{"One", 1, 1, true},
		{"Negative", -7, 0, false},
		{"Min", math.MinInt32, 0, false},
		{"Largest exact", 46340, 2147395600, true},
		{"Wraps", 65536, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SquareIfPositive(tt.x)
			if ok != tt.wantOK {
				t.Fatalf("SquareIfPositive(%d) ok = %v, want %v", tt.x, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SquareIfPositive(%d) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestSquareInto(t *testing.T) {
	var sq int32
	if !SquareInto[int32](5, &sq) {
		t.Fatal("SquareInto(5) = false, want true")
	}
	if sq != 25 {
		t.Errorf("SquareInto(5) stored %d, want 25", sq)
	}

	if SquareInto[int32](-7, &sq) {
		t.Error("SquareInto(-7) = true, want false")
	}

	for _, x := range []int32{-100, -1, 0, 1, 100, math.MaxInt32} {
		AssertSquareDomain(t, x)
	}
}

func TestSquareInto_NilOut(t *testing.T) {
	if !SquareInto[int64](3, nil) {
		t.Error("SquareInto(3, nil) = false, want true")
	}
}

// TestIterative checks a run of consecutive inputs the way a loop-driven
// test suite would.
func TestIterative(t *testing.T) {
	for i := int64(-10); i <= 10; i++ {
		sq, ok := SquareIfPositive(i)
		if i < 0 {
			if ok {
				t.Fatalf("SquareIfPositive(%d) succeeded on negative input", i)
			}
			continue
		}
		if !ok || sq != i*i {
			t.Fatalf("SquareIfPositive(%d) = (%d, %v), want (%d, true)", i, sq, ok, i*i)
		}
	}
}
