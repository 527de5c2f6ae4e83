package sensor

import "google.golang.org/genai"

// Response schemas declared to the model. These shape the generation;
// actual enforcement happens separately in validate.go, because a schema
// sent to the model is a request, not a guarantee.

func scoreField(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: desc}
}

func hybridResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"scores": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ORG":   scoreField("Originality score [0.00, 1.00]"),
					"HI":    scoreField("Human Influence score [0.00, 1.00]"),
					"PD":    scoreField("Process Direction score [0.00, 1.00]"),
					"REF":   scoreField("Refinement score [0.00, 1.00]"),
					"ALIGN": scoreField("Alignment score [0.00, 1.00]"),
					"COH":   scoreField("Coherence score [0.00, 1.00]"),
					"COMP":  scoreField("Completeness/Composition score [0.00, 1.00]"),
					"INTEG": scoreField("Integrity score [0.00, 1.00]"),
					"CITE":  scoreField("Citation score [0.00, 1.00] or null"),
				},
				Required: []string{"ORG", "HI", "PD", "REF", "ALIGN", "COH", "COMP", "INTEG"},
			},
			"turns": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"human":      {Type: genai.TypeInteger, Description: "Number of human turns"},
					"ai":         {Type: genai.TypeInteger, Description: "Number of AI turns"},
					"confidence": scoreField("Confidence in turn count [0.00, 1.00]"),
				},
				Required: []string{"human", "ai", "confidence"},
			},
		},
		Required: []string{"scores", "turns"},
	}
}

func auditResponseSchema() *genai.Schema {
	boolField := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeBoolean, Description: desc}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"has_citations":          boolField("True if in-text citations like (Author, 2023) or [1] are present."),
			"has_references":         boolField("True if a References or Bibliography section exists."),
			"has_structure":          boolField("True if the artifact has clear academic structure."),
			"citations_verified":     boolField("True if the cited works actually exist (verified via Google Search)."),
			"hallucination_detected": boolField("True if fake citations or made-up facts were found."),
		},
		Required: []string{"has_citations", "has_references", "has_structure", "citations_verified", "hallucination_detected"},
	}
}

func qualityResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"scores": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ORG":   scoreField("Originality score [0.00, 1.00]"),
					"INTEG": scoreField("Integrity score [0.00, 1.00]"),
					"COMP":  scoreField("Completeness/Composition score [0.00, 1.00]"),
				},
				Required: []string{"ORG", "INTEG", "COMP"},
			},
		},
		Required: []string{"scores"},
	}
}

func ledgerIntentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"intended_lyrics":  {Type: genai.TypeString, Description: "Lyrics explicitly requested by the user."},
			"intended_style":   {Type: genai.TypeString, Description: "Musical style, genre, or instruments requested."},
			"complexity_score": scoreField("Complexity of user instructions [0.0, 1.0]."),
			"process_depth":    scoreField("Depth of iteration [0.0, 1.0]."),
		},
		Required: []string{"intended_lyrics", "intended_style", "complexity_score", "process_depth"},
	}
}

func audioPerceptionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"heard_lyrics":   {Type: genai.TypeString, Description: "Full transcription of lyrics heard in the audio."},
			"detected_genre": {Type: genai.TypeString, Description: "The musical genre identified."},
			"detected_instruments": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of instruments heard.",
			},
			"detected_bpm":      {Type: genai.TypeString, Description: "Approximate BPM or tempo description."},
			"originality_score": scoreField("Perceived originality [0.0, 1.0]."),
		},
		Required: []string{"heard_lyrics", "detected_genre", "detected_instruments", "detected_bpm", "originality_score"},
	}
}

func forensicFindingsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"lyric_alignment_score": scoreField("How well heard lyrics match intended lyrics [0.0, 1.0]."),
			"style_match_score":     scoreField("How well detected genre/instruments match intended style [0.0, 1.0]."),
			"plagiarism_detected":   {Type: genai.TypeBoolean, Description: "True if lyrics appear to be from a pre-existing famous song."},
			"integrity_score":       scoreField("Overall integrity of the claim [0.0, 1.0]."),
		},
		Required: []string{"lyric_alignment_score", "style_match_score", "plagiarism_detected", "integrity_score"},
	}
}
