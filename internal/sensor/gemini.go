package sensor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"provenant/internal/artifact"
	"provenant/internal/scoring"
	"provenant/internal/verr"
)

// Config holds the Gemini sensor settings.
type Config struct {
	APIKey         string
	ReasoningModel string
	LedgerModel    string
}

// Gemini implements Sensor against the Gemini API with structured output.
type Gemini struct {
	client         *genai.Client
	reasoningModel string
	ledgerModel    string
	logger         *zap.Logger

	mu          sync.Mutex
	lastRequest time.Time
}

// NewGemini creates the production sensor. The logger may be nil.
func NewGemini(ctx context.Context, cfg Config, logger *zap.Logger) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required (set GEMINI_API_KEY)")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	reasoning := cfg.ReasoningModel
	if reasoning == "" {
		reasoning = "gemini-3-pro-preview"
	}
	ledger := cfg.LedgerModel
	if ledger == "" {
		ledger = "gemini-2.5-flash"
	}

	return &Gemini{
		client:         client,
		reasoningModel: reasoning,
		ledgerModel:    ledger,
		logger:         logger,
	}, nil
}

// ReasoningModel reports the model name used for the multimodal calls;
// the composer records it as the report's parser source.
func (g *Gemini) ReasoningModel() string { return g.reasoningModel }

// generate issues one structured-output call and returns the extracted
// JSON payload. Failures of the underlying call are sensor_unavailable;
// a response without a JSON object is a contract violation. No automatic
// retry: a failed sensor call fails the whole request.
func (g *Gemini) generate(ctx context.Context, op, model, system string, parts []*genai.Part, schema *genai.Schema, grounded bool) ([]byte, error) {
	// Space successive calls slightly to stay under burst limits.
	g.mu.Lock()
	if elapsed := time.Since(g.lastRequest); elapsed < 100*time.Millisecond {
		time.Sleep(100*time.Millisecond - elapsed)
	}
	g.lastRequest = time.Now()
	g.mu.Unlock()

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	if grounded {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	g.logger.Debug("sensor call",
		zap.String("op", op),
		zap.String("model", model),
		zap.Bool("grounded", grounded))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, verr.Wrap(fmt.Errorf("%s: gemini call: %w", op, err),
			verr.CategorySensorUnavailable, "gemini_call_failed", true)
	}

	text := resp.Text()
	raw, err := extractJSON(text)
	if err != nil {
		g.logger.Error("sensor returned non-JSON payload",
			zap.String("op", op),
			zap.String("raw", text))
		return nil, verr.Wrap(fmt.Errorf("%s: %w", op, err),
			verr.CategorySensorContract, "non_json_response", false)
	}
	return raw, nil
}

// extractJSON trims any markdown wrapping around the JSON object.
func extractJSON(text string) ([]byte, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("response contains no JSON object")
	}
	return []byte(text[start : end+1]), nil
}

// artifactParts renders the artifact (and optional ledger) as request
// parts: inline bytes for binary media, inline text otherwise.
func artifactParts(a artifact.Artifact, ledger string) ([]*genai.Part, error) {
	var sb strings.Builder
	if ledger != "" {
		sb.WriteString("---\nLEDGER TEXT:\n")
		sb.WriteString(ledger)
		sb.WriteString("\n")
	}

	if a.IsImage() || a.IsAudio() {
		sb.WriteString("---\nARTIFACT:\n[media attached]")
		data, err := a.Bytes()
		if err != nil {
			return nil, fmt.Errorf("decode artifact for sensor: %w", err)
		}
		return []*genai.Part{
			genai.NewPartFromText(sb.String()),
			genai.NewPartFromBytes(data, a.MimeType),
		}, nil
	}

	sb.WriteString("---\nARTIFACT TEXT:\n")
	sb.WriteString(a.Data)
	return []*genai.Part{genai.NewPartFromText(sb.String())}, nil
}

func (g *Gemini) HybridEvaluate(ctx context.Context, a artifact.Artifact, ledger string) (HybridResult, error) {
	parts, err := artifactParts(a, ledger)
	if err != nil {
		return HybridResult{}, err
	}
	raw, err := g.generate(ctx, "hybrid", g.reasoningModel, hybridPrompt, parts, hybridResponseSchema(), false)
	if err != nil {
		return HybridResult{}, err
	}
	res, err := parseHybrid(raw)
	if err != nil {
		g.logger.Error("hybrid sensor contract violation", zap.ByteString("raw", raw), zap.Error(err))
		return HybridResult{}, err
	}
	return res, nil
}

func (g *Gemini) AuditArtifact(ctx context.Context, a artifact.Artifact) (scoring.AuditSignals, error) {
	parts, err := artifactParts(a, "")
	if err != nil {
		return scoring.AuditSignals{}, err
	}
	// Grounding enabled: citation verification needs live search.
	raw, err := g.generate(ctx, "audit", g.reasoningModel, auditPrompt, parts, auditResponseSchema(), true)
	if err != nil {
		return scoring.AuditSignals{}, err
	}
	audit, err := parseAudit(raw)
	if err != nil {
		g.logger.Error("audit sensor contract violation", zap.ByteString("raw", raw), zap.Error(err))
		return scoring.AuditSignals{}, err
	}
	return audit, nil
}

func (g *Gemini) QualityScores(ctx context.Context, a artifact.Artifact) (scoring.QualityScores, error) {
	parts, err := artifactParts(a, "")
	if err != nil {
		return scoring.QualityScores{}, err
	}
	raw, err := g.generate(ctx, "quality", g.reasoningModel, qualityPrompt, parts, qualityResponseSchema(), false)
	if err != nil {
		return scoring.QualityScores{}, err
	}
	quality, err := parseQuality(raw)
	if err != nil {
		g.logger.Error("quality sensor contract violation", zap.ByteString("raw", raw), zap.Error(err))
		return scoring.QualityScores{}, err
	}
	return quality, nil
}

func (g *Gemini) ParseMusicLedger(ctx context.Context, ledger string) (LedgerIntent, error) {
	parts := []*genai.Part{genai.NewPartFromText("Analyze this production ledger:\n\n" + ledger)}
	raw, err := g.generate(ctx, "ledger_parse", g.ledgerModel, ledgerParsePrompt, parts, ledgerIntentSchema(), false)
	if err != nil {
		return LedgerIntent{}, err
	}
	intent, err := parseLedgerIntent(raw)
	if err != nil {
		g.logger.Error("ledger parse contract violation", zap.ByteString("raw", raw), zap.Error(err))
		return LedgerIntent{}, err
	}
	return intent, nil
}

func (g *Gemini) PerceiveAudio(ctx context.Context, a artifact.Artifact) (AudioPerception, error) {
	data, err := a.Bytes()
	if err != nil {
		return AudioPerception{}, fmt.Errorf("decode audio for sensor: %w", err)
	}
	parts := []*genai.Part{
		genai.NewPartFromText("Transcribe the lyrics and identify the style/genre/instruments."),
		genai.NewPartFromBytes(data, a.MimeType),
	}
	raw, err := g.generate(ctx, "audio_perception", g.reasoningModel, audioPerceptionPrompt, parts, audioPerceptionSchema(), false)
	if err != nil {
		return AudioPerception{}, err
	}
	heard, err := parseAudioPerception(raw)
	if err != nil {
		g.logger.Error("audio perception contract violation", zap.ByteString("raw", raw), zap.Error(err))
		return AudioPerception{}, err
	}
	return heard, nil
}

func (g *Gemini) ForensicMatch(ctx context.Context, intent LedgerIntent, heard AudioPerception) (ForensicFindings, error) {
	prompt := fmt.Sprintf(
		"INTENDED LYRICS: %s\nINTENDED STYLE: %s\n\nHEARD LYRICS: %s\nDETECTED STYLE: %s\n\nTask:\n1. Search the HEARD LYRICS on Google to check for plagiarism.\n2. Compare Intended vs Heard data.",
		intent.IntendedLyrics, intent.IntendedStyle, heard.HeardLyrics, heard.DetectedGenre,
	)
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	raw, err := g.generate(ctx, "forensic_match", g.reasoningModel, forensicMatchPrompt, parts, forensicFindingsSchema(), true)
	if err != nil {
		return ForensicFindings{}, err
	}
	findings, err := parseForensicFindings(raw)
	if err != nil {
		g.logger.Error("forensic match contract violation", zap.ByteString("raw", raw), zap.Error(err))
		return ForensicFindings{}, err
	}
	return findings, nil
}
