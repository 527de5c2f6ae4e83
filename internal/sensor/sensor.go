// Package sensor is the gateway to the external reasoning model. The
// deterministic core only ever sees this package's validated outputs: raw
// model JSON is checked against a strict schema at the boundary and
// rejected outright when malformed, never coerced into a best-effort
// score.
package sensor

import (
	"context"

	"provenant/internal/artifact"
	"provenant/internal/scoring"
)

// HybridResult is the combined score vector and turn estimate from the
// single hybrid-mode call.
type HybridResult struct {
	Scores scoring.SemanticScores `json:"scores"`
	Turns  scoring.TurnCounts     `json:"turns"`
}

// LedgerIntent is stage A of the music pipeline: what the user asked for.
type LedgerIntent struct {
	IntendedLyrics  string  `json:"intended_lyrics"`
	IntendedStyle   string  `json:"intended_style"`
	ComplexityScore float64 `json:"complexity_score"`
	ProcessDepth    float64 `json:"process_depth"`
}

// AudioPerception is stage B: what the model hears, blind to the ledger.
type AudioPerception struct {
	HeardLyrics         string   `json:"heard_lyrics"`
	DetectedGenre       string   `json:"detected_genre"`
	DetectedInstruments []string `json:"detected_instruments"`
	DetectedBPM         string   `json:"detected_bpm"`
	OriginalityScore    float64  `json:"originality_score"`
}

// ForensicFindings is stage C: intent vs. perception, with a grounded
// plagiarism check.
type ForensicFindings struct {
	LyricAlignmentScore float64 `json:"lyric_alignment_score"`
	StyleMatchScore     float64 `json:"style_match_score"`
	PlagiarismDetected  bool    `json:"plagiarism_detected"`
	IntegrityScore      float64 `json:"integrity_score"`
}

// Sensor abstracts the reasoning-model calls so the composer can run
// against a mock in tests and the Gemini client in production.
type Sensor interface {
	// HybridEvaluate rates the artifact against its process ledger and
	// counts ledger turns by role.
	HybridEvaluate(ctx context.Context, a artifact.Artifact, ledger string) (HybridResult, error)

	// AuditArtifact runs the search-grounded forensic audit.
	AuditArtifact(ctx context.Context, a artifact.Artifact) (scoring.AuditSignals, error)

	// QualityScores rates the artifact's intrinsic semantic qualities.
	QualityScores(ctx context.Context, a artifact.Artifact) (scoring.QualityScores, error)

	// ParseMusicLedger extracts user intent from a production ledger.
	ParseMusicLedger(ctx context.Context, ledger string) (LedgerIntent, error)

	// PerceiveAudio transcribes and characterizes the audio blindly.
	PerceiveAudio(ctx context.Context, a artifact.Artifact) (AudioPerception, error)

	// ForensicMatch compares intent to perception and checks plagiarism
	// with search grounding.
	ForensicMatch(ctx context.Context, intent LedgerIntent, heard AudioPerception) (ForensicFindings, error)
}
