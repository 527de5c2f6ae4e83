package report

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"provenant/internal/artifact"
	"provenant/internal/notary"
	"provenant/internal/scoring"
	"provenant/internal/sensor"
	"provenant/internal/textsim"
	"provenant/internal/verr"
)

// Ledger thresholds for routing. The music path demands at least a token
// production ledger; the text path needs a substantive one to enter
// hybrid mode.
const (
	musicMinLedgerChars  = 50
	hybridMinLedgerChars = 100
)

// Options configures a Composer.
type Options struct {
	Policy scoring.Policy
	// ModelPolicy is the policy label recorded on every report.
	ModelPolicy string
	// ParserSource names the reasoning model behind the sensor.
	ParserSource string
	Logger       *zap.Logger
}

// Composer runs one full verification pass per call. It holds no mutable
// state, so a single Composer is safe for concurrent requests.
type Composer struct {
	sensor       sensor.Sensor
	sealer       *notary.Sealer
	policy       scoring.Policy
	modelPolicy  string
	parserSource string
	logger       *zap.Logger
}

func NewComposer(s sensor.Sensor, sealer *notary.Sealer, opts Options) *Composer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{
		sensor:       s,
		sealer:       sealer,
		policy:       opts.Policy,
		modelPolicy:  opts.ModelPolicy,
		parserSource: opts.ParserSource,
		logger:       logger,
	}
}

// Analyze produces the notary report for one artifact. notaryArtifact is
// what gets hashed (the original upload); sensorArtifact is what the
// reasoning model reads (e.g. text extracted from a PDF). Either a
// complete, internally consistent report is returned or the request fails
// as a whole.
func (c *Composer) Analyze(ctx context.Context, notaryArtifact, sensorArtifact artifact.Artifact, ledger string) (NotaryReport, error) {
	if notaryArtifact.IsAudio() {
		if len(strings.TrimSpace(ledger)) < musicMinLedgerChars {
			return NotaryReport{}, verr.Wrap(
				fmt.Errorf("music verification requires a production ledger of at least %d characters", musicMinLedgerChars),
				verr.CategoryInvalidInput, "music_ledger_missing", false)
		}
		return c.analyzeMusic(ctx, notaryArtifact, ledger)
	}

	if len(strings.TrimSpace(ledger)) > hybridMinLedgerChars {
		return c.analyzeHybrid(ctx, notaryArtifact, sensorArtifact, ledger)
	}
	return c.analyzeArtifactOnly(ctx, notaryArtifact, sensorArtifact)
}

func (c *Composer) analyzeHybrid(ctx context.Context, notaryArtifact, sensorArtifact artifact.Artifact, ledger string) (NotaryReport, error) {
	res, err := c.sensor.HybridEvaluate(ctx, sensorArtifact, ledger)
	if err != nil {
		return NotaryReport{}, err
	}

	// The similarity signal only exists for text-bearing media.
	var sim *float64
	if sensorArtifact.IsTextual() {
		s := textsim.Similarity(sensorArtifact.Data, ledger)
		sim = &s
	}

	md := scoring.DecideMode(ledger, &res.Turns, sim)
	c.logger.Debug("mode decided",
		zap.String("mode", string(md.Mode)),
		zap.Float64("htr", md.HTR))

	// The mode decision can still demote a noisy ledger to artifact-only
	// semantics; the hybrid formula then simply runs with zero HTR.
	outcome := scoring.HybridHAS(res.Scores, md, c.policy)

	cert, err := c.sealer.Seal(notaryArtifact)
	if err != nil {
		return NotaryReport{}, err
	}

	return NotaryReport{
		HAS:             outcome.HAS,
		VER:             outcome.VER,
		HASBase:         outcome.HASBase,
		PTotal:          outcome.PTotal,
		L:               outcome.L,
		CertID:          cert.CertID,
		ArtifactSHA256:  cert.ArtifactSHA256,
		IssuedAt:        cert.IssuedAt,
		ModelPolicy:     c.modelPolicy + " (G3)",
		ParserSource:    c.parserSource,
		TurnsConfidence: res.Turns.Confidence,
		Scores:          res.Scores,
	}, nil
}

func (c *Composer) analyzeArtifactOnly(ctx context.Context, notaryArtifact, sensorArtifact artifact.Artifact) (NotaryReport, error) {
	var (
		audit   scoring.AuditSignals
		quality scoring.QualityScores
	)

	// The two sensor calls write to disjoint outputs; run them together.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		audit, err = c.sensor.AuditArtifact(gctx, sensorArtifact)
		return err
	})
	g.Go(func() error {
		var err error
		quality, err = c.sensor.QualityScores(gctx, sensorArtifact)
		return err
	})
	if err := g.Wait(); err != nil {
		return NotaryReport{}, err
	}

	outcome, scores := scoring.ArtifactOnlyHAS(audit, quality, c.policy)

	cert, err := c.sealer.Seal(notaryArtifact)
	if err != nil {
		return NotaryReport{}, err
	}

	return NotaryReport{
		HAS:            outcome.HAS,
		VER:            outcome.VER,
		HASBase:        outcome.HASBase,
		PTotal:         outcome.PTotal,
		L:              outcome.L,
		CertID:         cert.CertID,
		ArtifactSHA256: cert.ArtifactSHA256,
		IssuedAt:       cert.IssuedAt,
		ModelPolicy:    c.modelPolicy + " (Grounded-G3)",
		ParserSource:   c.parserSource,
		Scores:         scores,
	}, nil
}

// analyzeMusic runs the three-stage pipeline: each stage depends on the
// previous one, so the calls are strictly sequential.
func (c *Composer) analyzeMusic(ctx context.Context, audio artifact.Artifact, ledger string) (NotaryReport, error) {
	intent, err := c.sensor.ParseMusicLedger(ctx, ledger)
	if err != nil {
		return NotaryReport{}, err
	}

	heard, err := c.sensor.PerceiveAudio(ctx, audio)
	if err != nil {
		return NotaryReport{}, err
	}

	findings, err := c.sensor.ForensicMatch(ctx, intent, heard)
	if err != nil {
		return NotaryReport{}, err
	}

	analysis := scoring.MusicAnalysis{
		PlagiarismDetected: findings.PlagiarismDetected,
		LyricAlignment:     findings.LyricAlignmentScore,
		Scores: scoring.MusicScores{
			HI:    findings.StyleMatchScore,
			PD:    intent.ProcessDepth,
			IC:    intent.ComplexityScore,
			ORG:   heard.OriginalityScore,
			INTEG: findings.IntegrityScore,
		},
	}
	outcome := scoring.MusicHAS(analysis, c.policy)

	cert, err := c.sealer.Seal(audio)
	if err != nil {
		return NotaryReport{}, err
	}

	plagiarism := findings.PlagiarismDetected
	alignment := findings.LyricAlignmentScore

	return NotaryReport{
		HAS:             outcome.HAS,
		VER:             outcome.VER,
		HASBase:         outcome.HASBase,
		PTotal:          outcome.PTotal,
		L:               outcome.L,
		CertID:          cert.CertID,
		ArtifactSHA256:  cert.ArtifactSHA256,
		IssuedAt:        cert.IssuedAt,
		ModelPolicy:     c.modelPolicy + " (Audio-G3)",
		ParserSource:    c.parserSource,
		TurnsConfidence: 1,
		Scores: scoring.SemanticScores{
			ORG:   analysis.Scores.ORG,
			COH:   findings.StyleMatchScore,
			COMP:  analysis.Scores.IC,
			HI:    analysis.Scores.HI,
			PD:    analysis.Scores.PD,
			REF:   analysis.Scores.PD,
			ALIGN: findings.LyricAlignmentScore,
			INTEG: analysis.Scores.INTEG,
			IC:    scoring.Float(analysis.Scores.IC),
		},
		IsMusic:            true,
		PlagiarismDetected: &plagiarism,
		LyricAlignment:     &alignment,
	}, nil
}
