package scoring

import "math"

// AuditSignals are the boolean findings of the grounded audit sensor.
type AuditSignals struct {
	HasStructure          bool `json:"has_structure"`
	HasCitations          bool `json:"has_citations"`
	HasReferences         bool `json:"has_references"`
	CitationsVerified     bool `json:"citations_verified"`
	HallucinationDetected bool `json:"hallucination_detected"`
}

// QualityScores are the intrinsic semantic qualities rated without any
// process evidence.
type QualityScores struct {
	ORG   float64 `json:"ORG"`
	INTEG float64 `json:"INTEG"`
	COMP  float64 `json:"COMP"`
}

// ArtifactOnlyHAS scores an artifact with no usable ledger. The quality
// score carries 50% weight; structural and grounding findings add or
// subtract a flat academic bonus. The returned score vector synthesizes
// the process metrics at zero since no process evidence exists.
func ArtifactOnlyHAS(audit AuditSignals, quality QualityScores, pol Policy) (Result, SemanticScores) {
	qualityScore := 100 * (0.6*quality.ORG + 0.4*quality.INTEG)

	bonus := 0.0
	if audit.HasStructure {
		bonus += 5
	}
	if audit.HasCitations {
		bonus += 5
	}
	if audit.HasReferences {
		bonus += 5
	}
	if audit.CitationsVerified {
		bonus += 15
	}
	if audit.HallucinationDetected {
		bonus -= 30
	}

	has := int(math.Round(clamp(qualityScore*0.5+bonus, 0, pol.ArtifactOnlyCap)))

	scores := SemanticScores{
		ORG:   quality.ORG,
		INTEG: quality.INTEG,
		COMP:  quality.COMP,
	}
	// A verified grounding failure overrides whatever the quality sensor
	// thought of integrity.
	if audit.HallucinationDetected {
		scores.INTEG = 0.2
	}
	if audit.CitationsVerified {
		scores.ALIGN = 1
	}
	if audit.HasCitations {
		scores.CITE = Float(1)
	}

	res := Result{
		HAS: has,
		VER: tierFor(has, scores.INTEG),
		// No separate decomposition exists in this mode; it is folded into
		// the bonus term.
		HASBase: float64(has),
		PTotal:  0,
		L:       1,
	}
	return res, scores
}
