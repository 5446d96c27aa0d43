package arith

import (
	"testing"
)

func TestDefaultNames_Membership(t *testing.T) {
	names := DefaultNames()

	tests := []struct {
		name string
		want bool
	}{
		{"Ricardo", true},
		{"Herminia", true},
		{"Manuel", true},
		{"Paula", true},
		{"Miguel", false},
		{"ricardo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := names.Contains(tt.name); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if names.Len() != 4 {
		t.Errorf("Len() = %d, want 4", names.Len())
	}
}

// TestNameRegistry_Immutable verifies neither the constructor input nor
// the Names copy can reach the registry.
func TestNameRegistry_Immutable(t *testing.T) {
	input := []string{"Ana", "Luis"}
	r := NewNameRegistry(input...)

	input[0] = "Mallory"
	if !r.Contains("Ana") || r.Contains("Mallory") {
		t.Error("registry changed after its input slice was modified")
	}

	out := r.Names()
	out[1] = "Mallory"
	if !r.Contains("Luis") || r.Contains("Mallory") {
		t.Error("registry changed after Names() copy was modified")
	}

	again := DefaultNames().Names()
	again[0] = "Mallory"
	if DefaultNames().Contains("Mallory") {
		t.Error("default registry changed through Names() copy")
	}
}

func TestNewNameRegistry_Duplicates(t *testing.T) {
	r := NewNameRegistry("Ana", "Luis", "Ana")

	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	if got := r.Names(); got[0] != "Ana" || got[1] != "Luis" {
		t.Errorf("Names() = %v, want [Ana Luis]", got)
	}
}

func TestNameRegistry_Zero(t *testing.T) {
	var r NameRegistry
	if r.Contains("Ricardo") {
		t.Error("zero registry reports membership")
	}
	if r.Len() != 0 || len(r.Names()) != 0 {
		t.Error("zero registry is not empty")
	}
}
