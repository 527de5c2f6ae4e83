// Package report assembles the final notary report: it routes a request to
// the right scoring path, joins the sensor results, and seals the
// certificate.
package report

import "provenant/internal/scoring"

// NotaryReport is the sole externally visible output of a verification
// run. It is immutable once built and owned entirely by its request.
type NotaryReport struct {
	HAS     int          `json:"HAS"`
	VER     scoring.Tier `json:"VER"`
	HASBase float64      `json:"HAS_base"`
	PTotal  float64      `json:"P_total"`
	L       float64      `json:"L"`

	CertID         string `json:"cert_id"`
	ArtifactSHA256 string `json:"artifact_sha256"`
	IssuedAt       string `json:"issued_at"`

	ModelPolicy     string                 `json:"PPM_MODEL_POLICY"`
	ParserSource    string                 `json:"parser_source"`
	TurnsConfidence float64                `json:"turns_confidence"`
	FallbackUsed    bool                   `json:"fallback_used"`
	Scores          scoring.SemanticScores `json:"scores"`

	// Music path only.
	IsMusic            bool     `json:"is_music,omitempty"`
	PlagiarismDetected *bool    `json:"plagiarism_detected,omitempty"`
	LyricAlignment     *float64 `json:"lyric_alignment,omitempty"`
}
