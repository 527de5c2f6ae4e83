package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeValue(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{in: 0.5, want: 0.5},
		{in: 0, want: 0},
		{in: 1, want: 1},
		{in: -0.3, want: 0},
		{in: 85, want: 0.85},   // percent-scale answer
		{in: 150, want: 1},     // percent-scale, clamped
		{in: 1.01, want: 0.0101},
	}
	for _, tc := range cases {
		if got := NormalizeValue(tc.in); got != tc.want {
			t.Fatalf("NormalizeValue(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePreservesNilCite(t *testing.T) {
	s := SemanticScores{ORG: 90, HI: 0.5, INTEG: 1.5}
	got := s.Normalize()

	want := SemanticScores{ORG: 0.9, HI: 0.5, INTEG: 0.015}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
	if got.CITE != nil {
		t.Fatal("nil CITE must stay nil through normalization")
	}
}

func TestNormalizeScalesPresentCite(t *testing.T) {
	s := SemanticScores{CITE: Float(80), IC: Float(0.4)}
	got := s.Normalize()

	if got.CITE == nil || *got.CITE != 0.8 {
		t.Fatalf("CITE = %v, want 0.8", got.CITE)
	}
	if got.IC == nil || *got.IC != 0.4 {
		t.Fatalf("IC = %v, want 0.4", got.IC)
	}
}
