package scoring

import "math"

// Hybrid formula weights. HI and PD dominate: the score is about who drove
// the process, not how polished the output reads.
const (
	wHI    = 0.25
	wPD    = 0.18
	wREF   = 0.15
	wALIGN = 0.12
	wORG   = 0.10
	wCOH   = 0.08
	wCOMP  = 0.07
	wHTR   = 0.05

	htrCap     = 0.7
	penaltyCap = 45
)

// HybridHAS scores an artifact with process evidence. Scores must already
// be normalized into [0,1].
func HybridHAS(s SemanticScores, md ModeDecision, pol Policy) Result {
	cappedHTR := math.Min(md.HTR, htrCap)
	base := 100 * (wHI*s.HI + wPD*s.PD + wREF*s.REF + wALIGN*s.ALIGN +
		wORG*s.ORG + wCOH*s.COH + wCOMP*s.COMP + wHTR*cappedHTR)

	pFab := 30 * (1 - s.INTEG)
	pCite := 0.0
	if s.CITE != nil {
		pCite = 15 * (1 - *s.CITE)
	}
	pDer := 12 * math.Max(0, 0.6-s.ORG)
	pInc := 8 * math.Max(0, 0.5-s.ALIGN) * s.PD
	pTotal := math.Min(pFab+pCite+pDer+pInc, penaltyCap)

	// Leverage rewards only when HI, PD and REF are simultaneously high.
	l := clamp(0.9+0.2*min3(s.HI, s.PD, s.REF), 0.9, 1.15)

	raw := (base - pTotal) * l
	has := int(math.Round(clamp(raw, 0, pol.EthicalCap)))

	return Result{
		HAS:     has,
		VER:     tierFor(has, s.INTEG),
		HASBase: base,
		PTotal:  pTotal,
		L:       l,
	}
}

// tierFor maps a HAS score to a verification tier. The integrity gate can
// only demote, never promote.
func tierFor(has int, integ float64) Tier {
	switch {
	case has < 40 || integ < 0.4:
		return Ver0
	case has < 60:
		return Ver1
	case has < 75 || integ < 0.85:
		return Ver2
	default:
		return Ver3
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
