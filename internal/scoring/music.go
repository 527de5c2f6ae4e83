package scoring

import "math"

// MusicScores are the five metrics the three-stage music pipeline settles
// on: style match (HI), ledger depth (PD), instruction complexity (IC),
// perceived originality (ORG) and claim integrity (INTEG).
type MusicScores struct {
	HI    float64 `json:"HI"`
	PD    float64 `json:"PD"`
	IC    float64 `json:"IC"`
	ORG   float64 `json:"ORG"`
	INTEG float64 `json:"INTEG"`
}

// MusicAnalysis is the joined output of the music pipeline.
type MusicAnalysis struct {
	PlagiarismDetected bool        `json:"plagiarism_detected"`
	LyricAlignment     float64     `json:"lyric_alignment_score"`
	Scores             MusicScores `json:"scores"`
}

// Music formula weights and the lyric-mismatch kill threshold.
const (
	mwHI  = 0.35
	mwPD  = 0.25
	mwIC  = 0.25
	mwORG = 0.15

	lyricKillThreshold = 0.4
)

// MusicHAS scores an audio artifact. Plagiarism or a lyric mismatch below
// the threshold is an absolute kill switch: no other input can rescue the
// score.
func MusicHAS(a MusicAnalysis, pol Policy) Result {
	if a.PlagiarismDetected || a.LyricAlignment < lyricKillThreshold {
		return Result{HAS: 0, VER: Ver0, HASBase: 0, PTotal: 100, L: 0}
	}

	base := 100 * (mwHI*a.Scores.HI + mwPD*a.Scores.PD + mwIC*a.Scores.IC + mwORG*a.Scores.ORG)
	pTotal := math.Round(20 * (1 - a.Scores.INTEG))
	l := 1.0

	has := int(math.Round(clamp((base-pTotal)*l, 0, pol.EthicalCap)))

	return Result{
		HAS:     has,
		VER:     musicTierFor(has),
		HASBase: base,
		PTotal:  pTotal,
		L:       l,
	}
}

// musicTierFor uses a narrower VER-2 band than the text formula (70, not
// 75) and no integrity gate; integrity is already priced into the penalty.
func musicTierFor(has int) Tier {
	switch {
	case has < 40:
		return Ver0
	case has < 60:
		return Ver1
	case has < 70:
		return Ver2
	default:
		return Ver3
	}
}
