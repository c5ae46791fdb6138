// Command pdftext writes the text layer of each PDF word list to a .txt
// file next to it. With no arguments it dumps the Oxford 3000 and Oxford
// 5000 lists from the working directory.
//
// Usage:
//
//	pdftext [--engine ledongthuc|docconv] [--layout columns|rows] [file.pdf ...]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/aruytehno/english-trainer/internal/app"
	"github.com/aruytehno/english-trainer/internal/app/pdftext"
	"github.com/aruytehno/english-trainer/internal/config"
	"github.com/aruytehno/english-trainer/internal/wordlist/source"
)

func main() {
	engineFlag := flag.String("engine", source.EngineLedongthuc, "PDF engine: ledongthuc or docconv")
	layoutFlag := flag.String("layout", string(source.LayoutColumns), "ledongthuc layout: columns or rows")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: os.Getenv("LOG_LEVEL"), Format: os.Getenv("LOG_FORMAT")})

	pdf, err := source.NewExtractor(*engineFlag, source.Layout(*layoutFlag))
	if err != nil {
		logger.Error("create extractor", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := pdftext.New(logger, pdf).DumpAll(ctx, flag.Args()); err != nil {
		logger.Error("dump failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
