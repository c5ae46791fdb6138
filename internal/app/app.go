package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aruytehno/english-trainer/internal/app/extract"
	"github.com/aruytehno/english-trainer/internal/config"
	"github.com/aruytehno/english-trainer/internal/wordlist/source"
	"github.com/aruytehno/english-trainer/pkg/ctxutil"
)

// Options carries command-line overrides. Empty fields keep the configured
// value.
type Options struct {
	ConfigPath string
	Mode       string
	OutputPath string
	DryRun     bool
	// Stdout receives the summary report.
	Stdout io.Writer
}

// Run is the application entry point. It loads configuration, initializes
// the logger, builds the word list and prints the summary report.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := applyOptions(cfg, opts); err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)

	logger.Info("starting word list build",
		slog.String("run_id", runID.String()),
		slog.String("version", BuildVersion()),
		slog.String("mode", cfg.Mode),
		slog.String("input_dir", cfg.InputDir),
		slog.String("pdf_engine", cfg.PDFEngine),
	)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	sources, err := cfg.ResolveSources()
	if err != nil {
		return fmt.Errorf("resolve sources: %w", err)
	}

	pdf, err := source.NewExtractor(cfg.PDFEngine, source.Layout(cfg.PDFLayout))
	if err != nil {
		return err
	}

	pipeline := extract.NewPipeline(logger, source.NewLoader(pdf), extract.Config{
		Sources:     sources,
		OutputPath:  cfg.OutputPath,
		Boilerplate: cfg.Boilerplate,
		DryRun:      cfg.DryRun,
	})
	if err := pipeline.Run(ctx); err != nil {
		return err
	}

	if opts.Stdout == nil {
		return nil
	}
	return extract.WriteReport(opts.Stdout, pipeline.Entries(), extract.ReportOptions{
		SampleSize:  cfg.SampleSize,
		PreviewSize: cfg.PreviewSize,
	})
}

// applyOptions layers flag values over the loaded config and re-validates.
func applyOptions(cfg *config.Config, opts Options) error {
	if opts.Mode == "" && opts.OutputPath == "" && !opts.DryRun {
		return nil
	}
	if opts.Mode != "" {
		cfg.Mode = opts.Mode
	}
	if opts.OutputPath != "" {
		cfg.OutputPath = opts.OutputPath
	}
	if opts.DryRun {
		cfg.DryRun = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}
