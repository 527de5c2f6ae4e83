package textsim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "drops_short_and_punctuation",
			in:   "The AI co-wrote it, I edited everything!",
			want: []string{"the", "wrote", "edited", "everything"},
		},
		{
			name: "keeps_accented_letters",
			in:   "canción única",
			want: []string{"canción", "única"},
		},
		{
			name: "empty",
			in:   "",
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Tokenize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCosineIdenticalTextsScoreOne(t *testing.T) {
	text := "watercolor study of the harbor at dusk"
	got := Similarity(text, text)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("Similarity(x, x) = %f, want 1", got)
	}
}

func TestCosineDisjointTextsScoreZero(t *testing.T) {
	if got := Similarity("quantum chromodynamics lattice", "sourdough starter hydration"); got != 0 {
		t.Fatalf("disjoint similarity = %f, want 0", got)
	}
}

func TestCosineEmptyInputsScoreZero(t *testing.T) {
	if got := Similarity("", "anything at all here"); got != 0 {
		t.Fatalf("empty similarity = %f, want 0", got)
	}
}

func TestCosinePartialOverlap(t *testing.T) {
	got := Similarity(
		"the painting shows the harbor",
		"harbor painting process log",
	)
	if got <= 0 || got >= 1 {
		t.Fatalf("partial overlap similarity = %f, want in (0,1)", got)
	}
}
