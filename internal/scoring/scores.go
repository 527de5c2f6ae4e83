// Package scoring is the deterministic core of the notary: the mode
// decision policy, the weighted HAS formulas for the text/image/PDF and
// music paths, and the verification-tier mapping. Every function here is a
// total, pure function of its inputs; sensor I/O lives in internal/sensor.
package scoring

// SemanticScores is the validated metric vector produced by the sensor.
// All present values lie in [0,1]. CITE is nil when no citation signal
// applies; IC is only set on the music path.
type SemanticScores struct {
	ORG   float64  `json:"ORG"`
	COH   float64  `json:"COH"`
	COMP  float64  `json:"COMP"`
	HI    float64  `json:"HI"`
	PD    float64  `json:"PD"`
	REF   float64  `json:"REF"`
	ALIGN float64  `json:"ALIGN"`
	INTEG float64  `json:"INTEG"`
	CITE  *float64 `json:"CITE"`
	IC    *float64 `json:"IC,omitempty"`
}

// TurnCounts is the sensor's estimate of ledger authorship split.
type TurnCounts struct {
	Human      int     `json:"human"`
	AI         int     `json:"ai"`
	Confidence float64 `json:"confidence"`
}

type Mode string

const (
	ModeHybrid       Mode = "hybrid"
	ModeArtifactOnly Mode = "artifact_only"
)

// ModeDecision is consumed immediately by the scoring engine of the same
// request; it is never persisted.
type ModeDecision struct {
	Mode Mode    `json:"mode"`
	HTR  float64 `json:"htr"`
}

type Tier string

const (
	Ver0 Tier = "VER-0"
	Ver1 Tier = "VER-1"
	Ver2 Tier = "VER-2"
	Ver3 Tier = "VER-3"
)

// Result is the numeric outcome of one formula run. ArtifactOnly reports a
// degenerate decomposition (HASBase=HAS, PTotal=0, L=1) by convention.
type Result struct {
	HAS     int     `json:"HAS"`
	VER     Tier    `json:"VER"`
	HASBase float64 `json:"HAS_base"`
	PTotal  float64 `json:"P_total"`
	L       float64 `json:"L"`
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func clamp01(x float64) float64 { return clamp(x, 0, 1) }

// NormalizeValue maps a raw sensor number into [0,1]. Models occasionally
// answer on a 0-100 scale; anything above 1 is treated that way.
func NormalizeValue(v float64) float64 {
	if v > 1 {
		return clamp01(v / 100)
	}
	return clamp01(v)
}

// Normalize returns a copy with every present field forced into [0,1].
func (s SemanticScores) Normalize() SemanticScores {
	out := SemanticScores{
		ORG:   NormalizeValue(s.ORG),
		COH:   NormalizeValue(s.COH),
		COMP:  NormalizeValue(s.COMP),
		HI:    NormalizeValue(s.HI),
		PD:    NormalizeValue(s.PD),
		REF:   NormalizeValue(s.REF),
		ALIGN: NormalizeValue(s.ALIGN),
		INTEG: NormalizeValue(s.INTEG),
	}
	if s.CITE != nil {
		cite := NormalizeValue(*s.CITE)
		out.CITE = &cite
	}
	if s.IC != nil {
		ic := NormalizeValue(*s.IC)
		out.IC = &ic
	}
	return out
}

// Float is a convenience for optional score fields.
func Float(v float64) *float64 { return &v }
