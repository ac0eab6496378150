package core

import (
	"slices"
	"testing"
)

func TestSeedsDeterministic(t *testing.T) {
	a := NewRNG(7).Seeds(8)
	b := NewRNG(7).Seeds(8)
	if !slices.Equal(a, b) {
		t.Fatalf("same base seed produced different sequences: %v vs %v", a, b)
	}
	c := NewRNG(8).Seeds(8)
	if slices.Equal(a, c) {
		t.Fatal("different base seeds should produce different sequences")
	}
	if got := NewRNG(1).Seeds(0); got != nil {
		t.Fatalf("expected nil for zero seeds, got %v", got)
	}
}
