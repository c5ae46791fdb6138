// Package extract runs the word-list build: it reads every configured
// source, scans it for level labels and headwords, merges the results into
// one ordered list and writes it out as JSON.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aruytehno/english-trainer/internal/domain"
	"github.com/aruytehno/english-trainer/internal/wordlist"
	"github.com/aruytehno/english-trainer/internal/wordlist/clean"
	"github.com/aruytehno/english-trainer/internal/wordlist/export"
	"github.com/aruytehno/english-trainer/internal/wordlist/scan"
	"github.com/aruytehno/english-trainer/internal/wordlist/source"
	"github.com/aruytehno/english-trainer/pkg/ctxutil"
)

// Config holds the settings for one pipeline run.
type Config struct {
	Sources     []domain.Source
	OutputPath  string
	Boilerplate []string
	DryRun      bool
}

// SourceLoader is implemented by *source.Loader.
type SourceLoader interface {
	Check(src domain.Source) error
	Load(ctx context.Context, src domain.Source) ([]source.Page, error)
}

// SourceResult holds the outcome of reading and scanning one source.
type SourceResult struct {
	Source       domain.Source
	Pages        int
	SkippedPages int
	Words        int
	Stats        scan.Stats
	Duration     time.Duration
}

// Pipeline orchestrates preflight, extraction, merging and writing.
type Pipeline struct {
	base    *slog.Logger
	log     *slog.Logger
	loader  SourceLoader
	cleaner *clean.Cleaner
	cfg     Config
	runID   uuid.UUID

	results []SourceResult
	entries []domain.WordEntry
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, loader SourceLoader, cfg Config) *Pipeline {
	return &Pipeline{
		base:    log,
		log:     log,
		loader:  loader,
		cleaner: clean.New(cfg.Boilerplate),
		cfg:     cfg,
	}
}

// RunID returns the identifier attached to the last run's log records.
func (p *Pipeline) RunID() uuid.UUID {
	return p.runID
}

// Results returns per-source results after Run completes.
func (p *Pipeline) Results() []SourceResult {
	return p.results
}

// Entries returns the final ordered list after Run completes.
func (p *Pipeline) Entries() []domain.WordEntry {
	return p.entries
}

// Run executes the pipeline. Any missing source aborts the run before a
// single document is parsed, and the output file is left untouched.
// The run id is taken from ctx, or generated when ctx carries none.
func (p *Pipeline) Run(ctx context.Context) error {
	runID, ok := ctxutil.RunIDFromCtx(ctx)
	if !ok {
		runID = uuid.New()
		ctx = ctxutil.WithRunID(ctx, runID)
	}
	p.runID = runID
	p.log = p.base.With(slog.String("run_id", runID.String()))

	if len(p.cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured")
	}

	// Step 1: Preflight.
	for _, src := range p.cfg.Sources {
		if err := p.loader.Check(src); err != nil {
			return err
		}
	}

	// Step 2: Extract observations source by source.
	p.results = p.results[:0]
	var observations []domain.Observation
	for _, src := range p.cfg.Sources {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("extract %s: %w", src.Path, err)
		}

		obs, result, err := p.runSource(ctx, src)
		if err != nil {
			return err
		}
		p.results = append(p.results, result)
		observations = append(observations, obs...)
	}

	// Step 3: Merge.
	p.entries = wordlist.Build(observations)
	p.log.Info("word list built",
		slog.Int("observations", len(observations)),
		slog.Int("entries", len(p.entries)),
	)

	// Step 4: Write.
	if p.cfg.DryRun {
		p.log.Info("dry run, output not written", slog.String("output", p.cfg.OutputPath))
		return nil
	}
	if err := export.WriteFile(p.cfg.OutputPath, p.entries); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	p.log.Info("output written", slog.String("output", p.cfg.OutputPath), slog.Int("entries", len(p.entries)))

	return nil
}

func (p *Pipeline) runSource(ctx context.Context, src domain.Source) ([]domain.Observation, SourceResult, error) {
	start := time.Now()
	p.log.Info("processing source", slog.String("path", src.Path), slog.String("kind", src.Kind.String()))

	pages, err := p.loader.Load(ctx, src)
	if err != nil {
		return nil, SourceResult{}, fmt.Errorf("load %s: %w", src.Path, err)
	}

	result := SourceResult{Source: src, Pages: len(pages)}
	for _, pg := range pages {
		if pg.Err != nil {
			result.SkippedPages++
			p.log.Warn("page skipped",
				slog.String("path", src.Path),
				slog.Int("page", pg.Number),
				slog.String("error", pg.Err.Error()),
			)
		}
	}

	obs, stats := scan.Document(src, source.Texts(pages), p.cleaner)
	result.Words = len(obs)
	result.Stats = stats
	result.Duration = time.Since(start)

	p.log.Info("source completed",
		slog.String("path", src.Path),
		slog.Int("pages", result.Pages),
		slog.Int("skipped_pages", result.SkippedPages),
		slog.Int("words", result.Words),
		slog.Int("rejected", stats.Rejected),
		slog.Duration("duration", result.Duration),
	)

	return obs, result, nil
}
