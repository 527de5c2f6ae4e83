package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"provenant/internal/verr"
)

const validHybridJSON = `{
  "scores": {"ORG": 0.8, "HI": 0.6, "PD": 0.5, "REF": 0.7, "ALIGN": 0.9,
             "COH": 0.85, "COMP": 0.75, "INTEG": 0.95, "CITE": null},
  "turns": {"human": 4, "ai": 6, "confidence": 0.9}
}`

func TestParseHybridValid(t *testing.T) {
	res, err := parseHybrid([]byte(validHybridJSON))
	require.NoError(t, err)

	assert.Equal(t, 0.8, res.Scores.ORG)
	assert.Equal(t, 0.95, res.Scores.INTEG)
	assert.Nil(t, res.Scores.CITE, "null CITE survives as nil")
	assert.Equal(t, 4, res.Turns.Human)
	assert.Equal(t, 6, res.Turns.AI)
	assert.Equal(t, 0.9, res.Turns.Confidence)
}

func TestParseHybridPresentCite(t *testing.T) {
	body := `{
	  "scores": {"ORG": 1, "HI": 1, "PD": 1, "REF": 1, "ALIGN": 1,
	             "COH": 1, "COMP": 1, "INTEG": 1, "CITE": 0.5},
	  "turns": {"human": 0, "ai": 0, "confidence": 0}
	}`
	res, err := parseHybrid([]byte(body))
	require.NoError(t, err)
	require.NotNil(t, res.Scores.CITE)
	assert.Equal(t, 0.5, *res.Scores.CITE)
}

func TestParseHybridContractViolations(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "missing_scores",
			body: `{"turns": {"human": 1, "ai": 1, "confidence": 0.8}}`,
		},
		{
			name: "score_out_of_range",
			body: `{"scores": {"ORG": 1.4, "HI": 0, "PD": 0, "REF": 0, "ALIGN": 0, "COH": 0, "COMP": 0, "INTEG": 0},
			        "turns": {"human": 1, "ai": 1, "confidence": 0.8}}`,
		},
		{
			name: "negative_turns",
			body: `{"scores": {"ORG": 0, "HI": 0, "PD": 0, "REF": 0, "ALIGN": 0, "COH": 0, "COMP": 0, "INTEG": 0},
			        "turns": {"human": -1, "ai": 1, "confidence": 0.8}}`,
		},
		{
			name: "fractional_turns",
			body: `{"scores": {"ORG": 0, "HI": 0, "PD": 0, "REF": 0, "ALIGN": 0, "COH": 0, "COMP": 0, "INTEG": 0},
			        "turns": {"human": 1.5, "ai": 1, "confidence": 0.8}}`,
		},
		{
			name: "missing_integ",
			body: `{"scores": {"ORG": 0, "HI": 0, "PD": 0, "REF": 0, "ALIGN": 0, "COH": 0, "COMP": 0},
			        "turns": {"human": 1, "ai": 1, "confidence": 0.8}}`,
		},
		{
			name: "wrong_type",
			body: `{"scores": "high", "turns": {"human": 1, "ai": 1, "confidence": 0.8}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseHybrid([]byte(tc.body))
			require.Error(t, err)
			assert.Equal(t, verr.CategorySensorContract, verr.CategoryOf(err))
		})
	}
}

func TestParseAudit(t *testing.T) {
	body := `{"has_citations": true, "has_references": false, "has_structure": true,
	          "citations_verified": true, "hallucination_detected": false}`
	audit, err := parseAudit([]byte(body))
	require.NoError(t, err)
	assert.True(t, audit.HasCitations)
	assert.False(t, audit.HasReferences)
	assert.True(t, audit.CitationsVerified)

	// Booleans are required booleans, not truthy strings.
	_, err = parseAudit([]byte(`{"has_citations": "yes", "has_references": false, "has_structure": true,
	  "citations_verified": true, "hallucination_detected": false}`))
	require.Error(t, err)
	assert.Equal(t, verr.CategorySensorContract, verr.CategoryOf(err))
}

func TestParseQuality(t *testing.T) {
	quality, err := parseQuality([]byte(`{"scores": {"ORG": 0.9, "INTEG": 0.8, "COMP": 0.7}}`))
	require.NoError(t, err)
	assert.Equal(t, 0.9, quality.ORG)
	assert.Equal(t, 0.8, quality.INTEG)
	assert.Equal(t, 0.7, quality.COMP)

	_, err = parseQuality([]byte(`{"scores": {"ORG": 0.9, "INTEG": 0.8}}`))
	require.Error(t, err)
}

func TestParseMusicStages(t *testing.T) {
	intent, err := parseLedgerIntent([]byte(`{"intended_lyrics": "la la", "intended_style": "synthwave",
	  "complexity_score": 0.7, "process_depth": 0.6}`))
	require.NoError(t, err)
	assert.Equal(t, "synthwave", intent.IntendedStyle)

	heard, err := parseAudioPerception([]byte(`{"heard_lyrics": "la la", "detected_genre": "synthwave",
	  "detected_instruments": ["synth", "drums"], "detected_bpm": "110", "originality_score": 0.8}`))
	require.NoError(t, err)
	assert.Len(t, heard.DetectedInstruments, 2)

	findings, err := parseForensicFindings([]byte(`{"lyric_alignment_score": 0.95, "style_match_score": 0.9,
	  "plagiarism_detected": false, "integrity_score": 0.85}`))
	require.NoError(t, err)
	assert.False(t, findings.PlagiarismDetected)
	assert.Equal(t, 0.95, findings.LyricAlignmentScore)

	_, err = parseForensicFindings([]byte(`{"lyric_alignment_score": 2.0, "style_match_score": 0.9,
	  "plagiarism_detected": false, "integrity_score": 0.85}`))
	require.Error(t, err)
	assert.Equal(t, verr.CategorySensorContract, verr.CategoryOf(err))
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare", in: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose_wrapped", in: "Here you go: {\"a\":1} hope it helps", want: `{"a":1}`},
		{name: "no_object", in: "sorry, I cannot do that", wantErr: true},
		{name: "reversed_braces", in: "} {", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractJSON(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}
