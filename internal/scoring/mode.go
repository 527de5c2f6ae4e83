package scoring

import "strings"

// Thresholds for the mode decision. A trimmed ledger at or under
// minLedgerChars counts as absent; the raw length drives the noise and
// long-ledger rules, matching the similarity signal which also sees the
// raw text.
const (
	minLedgerChars   = 100
	noiseSimCutoff   = 0.10
	noiseLedgerChars = 500
	longLedgerChars  = 1000
	defaultHTR       = 0.25
	minTurnsConf     = 0.6
)

// DecideMode classifies the request as hybrid or artifact-only and derives
// the human turn ratio. turns and simScore are optional. Rules are
// evaluated in order; the first match wins, and every input maps to a
// decision.
func DecideMode(ledgerText string, turns *TurnCounts, simScore *float64) ModeDecision {
	if len(strings.TrimSpace(ledgerText)) <= minLedgerChars {
		return ModeDecision{Mode: ModeArtifactOnly, HTR: 0}
	}

	// Noise suppression: a short ledger that barely resembles the artifact
	// is treated as absent.
	if simScore != nil && *simScore < noiseSimCutoff && len(ledgerText) < noiseLedgerChars {
		return ModeDecision{Mode: ModeArtifactOnly, HTR: 0}
	}

	// A long ledger is always trusted as process evidence.
	if len(ledgerText) > longLedgerChars {
		htr := defaultHTR
		if ratio, ok := turnRatio(turns); ok {
			htr = ratio
		}
		return ModeDecision{Mode: ModeHybrid, HTR: htr}
	}

	// Medium-length ledger: only a confident, non-trivial turn ratio earns
	// a precise hybrid decision.
	if ratio, ok := turnRatio(turns); ok && ratio > 0.1 {
		return ModeDecision{Mode: ModeHybrid, HTR: ratio}
	}

	return ModeDecision{Mode: ModeHybrid, HTR: defaultHTR}
}

func turnRatio(turns *TurnCounts) (float64, bool) {
	if turns == nil {
		return 0, false
	}
	total := turns.Human + turns.AI
	if total <= 0 || turns.Confidence < minTurnsConf {
		return 0, false
	}
	return float64(turns.Human) / float64(total), true
}
