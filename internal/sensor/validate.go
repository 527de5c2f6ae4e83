package sensor

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonschema"

	"provenant/internal/scoring"
	"provenant/internal/verr"
)

// Validation documents for the boundary check. Unlike the generation
// schemas in schema.go these are enforced: presence, types and numeric
// ranges. A payload that fails here fails the whole request.

const hybridSchemaDoc = `{
  "type": "object",
  "required": ["scores", "turns"],
  "properties": {
    "scores": {
      "type": "object",
      "required": ["ORG", "HI", "PD", "REF", "ALIGN", "COH", "COMP", "INTEG"],
      "properties": {
        "ORG":   {"type": "number", "minimum": 0, "maximum": 1},
        "HI":    {"type": "number", "minimum": 0, "maximum": 1},
        "PD":    {"type": "number", "minimum": 0, "maximum": 1},
        "REF":   {"type": "number", "minimum": 0, "maximum": 1},
        "ALIGN": {"type": "number", "minimum": 0, "maximum": 1},
        "COH":   {"type": "number", "minimum": 0, "maximum": 1},
        "COMP":  {"type": "number", "minimum": 0, "maximum": 1},
        "INTEG": {"type": "number", "minimum": 0, "maximum": 1},
        "CITE":  {"type": ["number", "null"], "minimum": 0, "maximum": 1}
      }
    },
    "turns": {
      "type": "object",
      "required": ["human", "ai", "confidence"],
      "properties": {
        "human":      {"type": "integer", "minimum": 0},
        "ai":         {"type": "integer", "minimum": 0},
        "confidence": {"type": "number", "minimum": 0, "maximum": 1}
      }
    }
  }
}`

const auditSchemaDoc = `{
  "type": "object",
  "required": ["has_citations", "has_references", "has_structure", "citations_verified", "hallucination_detected"],
  "properties": {
    "has_citations":          {"type": "boolean"},
    "has_references":         {"type": "boolean"},
    "has_structure":          {"type": "boolean"},
    "citations_verified":     {"type": "boolean"},
    "hallucination_detected": {"type": "boolean"}
  }
}`

const qualitySchemaDoc = `{
  "type": "object",
  "required": ["scores"],
  "properties": {
    "scores": {
      "type": "object",
      "required": ["ORG", "INTEG", "COMP"],
      "properties": {
        "ORG":   {"type": "number", "minimum": 0, "maximum": 1},
        "INTEG": {"type": "number", "minimum": 0, "maximum": 1},
        "COMP":  {"type": "number", "minimum": 0, "maximum": 1}
      }
    }
  }
}`

const ledgerIntentSchemaDoc = `{
  "type": "object",
  "required": ["intended_lyrics", "intended_style", "complexity_score", "process_depth"],
  "properties": {
    "intended_lyrics":  {"type": "string"},
    "intended_style":   {"type": "string"},
    "complexity_score": {"type": "number", "minimum": 0, "maximum": 1},
    "process_depth":    {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

const audioPerceptionSchemaDoc = `{
  "type": "object",
  "required": ["heard_lyrics", "detected_genre", "detected_instruments", "detected_bpm", "originality_score"],
  "properties": {
    "heard_lyrics":         {"type": "string"},
    "detected_genre":       {"type": "string"},
    "detected_instruments": {"type": "array", "items": {"type": "string"}},
    "detected_bpm":         {"type": "string"},
    "originality_score":    {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

const forensicFindingsSchemaDoc = `{
  "type": "object",
  "required": ["lyric_alignment_score", "style_match_score", "plagiarism_detected", "integrity_score"],
  "properties": {
    "lyric_alignment_score": {"type": "number", "minimum": 0, "maximum": 1},
    "style_match_score":     {"type": "number", "minimum": 0, "maximum": 1},
    "plagiarism_detected":   {"type": "boolean"},
    "integrity_score":       {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

var (
	hybridValidator          = mustCompile(hybridSchemaDoc)
	auditValidator           = mustCompile(auditSchemaDoc)
	qualityValidator         = mustCompile(qualitySchemaDoc)
	ledgerIntentValidator    = mustCompile(ledgerIntentSchemaDoc)
	audioPerceptionValidator = mustCompile(audioPerceptionSchemaDoc)
	forensicValidator        = mustCompile(forensicFindingsSchemaDoc)
)

func mustCompile(doc string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile([]byte(doc))
	if err != nil {
		panic(fmt.Sprintf("sensor: compile schema: %v", err))
	}
	return schema
}

func validateAgainst(schema *jsonschema.Schema, raw []byte, code string) error {
	result := schema.ValidateJSON(raw)
	if result.IsValid() {
		return nil
	}
	return verr.Wrap(
		fmt.Errorf("schema validation failed: %v", result.Errors),
		verr.CategorySensorContract, code, false,
	)
}

func decodeContract(raw []byte, schema *jsonschema.Schema, code string, out any) error {
	if err := validateAgainst(schema, raw, code); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return verr.Wrap(fmt.Errorf("decode sensor response: %w", err), verr.CategorySensorContract, code, false)
	}
	return nil
}

func parseHybrid(raw []byte) (HybridResult, error) {
	var res HybridResult
	if err := decodeContract(raw, hybridValidator, "hybrid_contract", &res); err != nil {
		return HybridResult{}, err
	}
	res.Scores = res.Scores.Normalize()
	return res, nil
}

func parseAudit(raw []byte) (scoring.AuditSignals, error) {
	var audit scoring.AuditSignals
	if err := decodeContract(raw, auditValidator, "audit_contract", &audit); err != nil {
		return scoring.AuditSignals{}, err
	}
	return audit, nil
}

func parseQuality(raw []byte) (scoring.QualityScores, error) {
	var payload struct {
		Scores scoring.QualityScores `json:"scores"`
	}
	if err := decodeContract(raw, qualityValidator, "quality_contract", &payload); err != nil {
		return scoring.QualityScores{}, err
	}
	q := payload.Scores
	q.ORG = scoring.NormalizeValue(q.ORG)
	q.INTEG = scoring.NormalizeValue(q.INTEG)
	q.COMP = scoring.NormalizeValue(q.COMP)
	return q, nil
}

func parseLedgerIntent(raw []byte) (LedgerIntent, error) {
	var intent LedgerIntent
	if err := decodeContract(raw, ledgerIntentValidator, "ledger_intent_contract", &intent); err != nil {
		return LedgerIntent{}, err
	}
	return intent, nil
}

func parseAudioPerception(raw []byte) (AudioPerception, error) {
	var heard AudioPerception
	if err := decodeContract(raw, audioPerceptionValidator, "audio_perception_contract", &heard); err != nil {
		return AudioPerception{}, err
	}
	return heard, nil
}

func parseForensicFindings(raw []byte) (ForensicFindings, error) {
	var findings ForensicFindings
	if err := decodeContract(raw, forensicValidator, "forensic_match_contract", &findings); err != nil {
		return ForensicFindings{}, err
	}
	return findings, nil
}
