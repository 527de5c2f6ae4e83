// provenant is the Human Agency Score notary CLI. It takes an artifact
// and an optional production ledger, asks the Gemini sensor for semantic
// measurements, runs the deterministic scoring core, and prints the
// sealed notary report.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"provenant/internal/artifact"
	"provenant/internal/config"
	"provenant/internal/notary"
	"provenant/internal/report"
	"provenant/internal/sensor"
	"provenant/internal/verr"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// verify flags
	ledgerPath    string
	extractedPath string
	jsonOutput    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "provenant",
	Short: "provenant - Human Agency Score notary",
	Long: `provenant scores how much human agency went into producing an artifact.

A Gemini sensor measures the semantics of the artifact and its production
ledger; a deterministic scoring core turns those measurements into a
bounded Human Agency Score, a verification tier, and a sealed certificate.
The sensor never decides: identical measurements always produce an
identical report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [artifact]",
	Short: "Score an artifact and seal a notary certificate",
	Long: `Runs one full verification pass over the artifact at the given path.

The scoring path is chosen from the inputs:
  - audio artifact + production ledger: three-stage music pipeline
  - substantive ledger (>100 chars):   hybrid process+artifact scoring
  - otherwise:                          artifact-only grounded audit

Example:
  provenant verify essay.md --ledger chat_export.txt
  provenant verify track.mp3 --ledger production_notes.txt --json`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := configPath
	if path == "" {
		path = os.Getenv("PROVENANT_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cfg.Sensor.APIKey == "" {
		return fmt.Errorf("no Gemini API key: set GEMINI_API_KEY or sensor.api_key in the config file")
	}

	notaryArtifact, err := artifact.FromFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load artifact: %w", err)
	}

	// The sensor can read pre-extracted text (e.g. from a PDF) in place of
	// the raw upload; the certificate still hashes the original bytes.
	sensorArtifact := notaryArtifact
	if extractedPath != "" {
		raw, err := os.ReadFile(extractedPath)
		if err != nil {
			return fmt.Errorf("failed to read extracted text: %w", err)
		}
		sensorArtifact = artifact.Artifact{
			MimeType: "text/plain",
			Data:     string(raw),
			Encoding: artifact.EncodingText,
		}
	}

	var ledger string
	if ledgerPath != "" {
		raw, err := os.ReadFile(ledgerPath)
		if err != nil {
			return fmt.Errorf("failed to read ledger: %w", err)
		}
		ledger = string(raw)
	}

	gem, err := sensor.NewGemini(ctx, sensor.Config{
		APIKey:         cfg.Sensor.APIKey,
		ReasoningModel: cfg.Sensor.ReasoningModel,
		LedgerModel:    cfg.Sensor.LedgerModel,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize sensor: %w", err)
	}

	composer := report.NewComposer(gem, notary.NewSealer(), report.Options{
		Policy:       cfg.ScoringPolicy(),
		ModelPolicy:  cfg.Policy.ModelPolicy,
		ParserSource: gem.ReasoningModel(),
		Logger:       logger,
	})

	runCtx, cancel := context.WithTimeout(ctx, cfg.SensorTimeout())
	defer cancel()

	logger.Info("verification started",
		zap.String("artifact", args[0]),
		zap.String("mime_type", notaryArtifact.MimeType),
		zap.Int("ledger_chars", len(strings.TrimSpace(ledger))))

	rep, err := composer.Analyze(runCtx, notaryArtifact, sensorArtifact, ledger)
	if err != nil {
		logger.Error("verification failed",
			zap.String("category", string(verr.CategoryOf(err))),
			zap.Error(err))
		return err
	}

	logger.Info("verification complete",
		zap.Int("has", rep.HAS),
		zap.String("ver", string(rep.VER)),
		zap.String("cert_id", rep.CertID))

	if jsonOutput {
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(renderReport(rep))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	verifyCmd.Flags().StringVarP(&ledgerPath, "ledger", "l", "", "path to the production ledger (chat export or session notes)")
	verifyCmd.Flags().StringVar(&extractedPath, "extracted", "", "path to pre-extracted text for the sensor to read")
	verifyCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw report JSON")

	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
