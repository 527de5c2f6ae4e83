package scoring

import (
	"strings"
	"testing"
)

func TestDecideModeEmptyLedger(t *testing.T) {
	got := DecideMode("", nil, nil)
	want := ModeDecision{Mode: ModeArtifactOnly, HTR: 0}
	if got != want {
		t.Fatalf("DecideMode(\"\") = %+v, want %+v", got, want)
	}
}

func TestDecideModeTrimmedBoundary(t *testing.T) {
	// Exactly 100 trimmed characters counts as absent; 101 proceeds.
	exactly100 := strings.Repeat("a", 100)
	if got := DecideMode("  "+exactly100+"  ", nil, nil); got.Mode != ModeArtifactOnly {
		t.Fatalf("100 trimmed chars: mode = %s, want artifact_only", got.Mode)
	}

	over := strings.Repeat("a", 101)
	got := DecideMode(over, nil, nil)
	if got.Mode != ModeHybrid || got.HTR != 0.25 {
		t.Fatalf("101 chars: got %+v, want hybrid fallback htr 0.25", got)
	}
}

func TestDecideModeNoiseSuppression(t *testing.T) {
	shortLedger := strings.Repeat("b", 200)

	// Low similarity on a short ledger forces artifact-only.
	sim := 0.05
	if got := DecideMode(shortLedger, nil, &sim); got.Mode != ModeArtifactOnly {
		t.Fatalf("low-sim short ledger: got %+v", got)
	}

	// Same similarity but a long ledger is still hybrid.
	longLedger := strings.Repeat("b", 1200)
	if got := DecideMode(longLedger, nil, &sim); got.Mode != ModeHybrid {
		t.Fatalf("low-sim long ledger: got %+v", got)
	}

	// Similarity at the cutoff does not trigger suppression.
	atCutoff := 0.10
	if got := DecideMode(shortLedger, nil, &atCutoff); got.Mode != ModeHybrid {
		t.Fatalf("sim at cutoff: got %+v", got)
	}
}

func TestDecideModeLongLedgerTurns(t *testing.T) {
	ledger := strings.Repeat("c", 1200)
	sim := 0.5
	turns := &TurnCounts{Human: 3, AI: 1, Confidence: 0.8}

	got := DecideMode(ledger, turns, &sim)
	if got.Mode != ModeHybrid || got.HTR != 0.75 {
		t.Fatalf("got %+v, want hybrid htr 0.75", got)
	}
}

func TestDecideModeLongLedgerLowConfidenceFallsBack(t *testing.T) {
	ledger := strings.Repeat("c", 1500)
	turns := &TurnCounts{Human: 5, AI: 0, Confidence: 0.5}

	got := DecideMode(ledger, turns, nil)
	if got.Mode != ModeHybrid || got.HTR != 0.25 {
		t.Fatalf("got %+v, want hybrid default htr 0.25", got)
	}
}

func TestDecideModeMediumLedger(t *testing.T) {
	ledger := strings.Repeat("d", 600)

	t.Run("confident_high_ratio", func(t *testing.T) {
		turns := &TurnCounts{Human: 2, AI: 2, Confidence: 0.9}
		got := DecideMode(ledger, turns, nil)
		if got.Mode != ModeHybrid || got.HTR != 0.5 {
			t.Fatalf("got %+v, want hybrid htr 0.5 (turn-derived)", got)
		}
	})

	t.Run("ratio_too_low_falls_back", func(t *testing.T) {
		turns := &TurnCounts{Human: 1, AI: 19, Confidence: 0.9}
		got := DecideMode(ledger, turns, nil)
		if got.Mode != ModeHybrid || got.HTR != 0.25 {
			t.Fatalf("got %+v, want hybrid fallback", got)
		}
	})

	t.Run("zero_turns_falls_back", func(t *testing.T) {
		turns := &TurnCounts{Human: 0, AI: 0, Confidence: 1}
		got := DecideMode(ledger, turns, nil)
		if got.Mode != ModeHybrid || got.HTR != 0.25 {
			t.Fatalf("got %+v, want hybrid fallback", got)
		}
	})
}

func TestDecideModeIdempotent(t *testing.T) {
	ledger := strings.Repeat("e", 800)
	sim := 0.4
	turns := &TurnCounts{Human: 2, AI: 2, Confidence: 0.7}

	first := DecideMode(ledger, turns, &sim)
	for i := 0; i < 10; i++ {
		if got := DecideMode(ledger, turns, &sim); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}
