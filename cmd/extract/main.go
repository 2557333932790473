package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/invox/invox/internal/artifact"
	"github.com/invox/invox/internal/common"
	"github.com/invox/invox/internal/extract"
	"github.com/invox/invox/internal/fetch"
	"github.com/invox/invox/internal/invoices"
	"github.com/invox/invox/internal/llm/gemini"
	"github.com/invox/invox/internal/pipeline"
	"github.com/invox/invox/internal/schema"
)

// One-shot extraction without a database: fetch a PDF by URL, run the full
// pipeline and print the validated record as JSON.
func main() {
	_ = godotenv.Load()

	fileID := flag.String("url", "", "URL of the PDF to extract")
	fileName := flag.String("name", "", "logical file name (defaults to URL basename)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *fileID == "" {
		fmt.Fprintln(os.Stderr, "usage: extract -url https://example.com/invoice.pdf [-name invoice.pdf]")
		os.Exit(2)
	}
	if *fileName == "" {
		*fileName = filepath.Base(*fileID)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := common.LoadConfig()
	if cfg.Inference.APIKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	artifacts, err := artifact.NewStore(cfg.Artifacts.Dir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "artifact store: %v\n", err)
		os.Exit(1)
	}
	validator, err := schema.NewValidator(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema: %v\n", err)
		os.Exit(1)
	}

	pipe := pipeline.NewExtraction(
		fetch.NewFetcher(fetch.Config{
			Timeout:      cfg.Fetch.Timeout,
			MaxRedirects: cfg.Fetch.MaxRedirects,
		}, artifacts, logger),
		extract.NewPDFExtractor(logger),
		gemini.NewClient(gemini.Config{
			Model:   cfg.Inference.Model,
			APIKey:  cfg.Inference.APIKey,
			BaseURL: cfg.Inference.BaseURL,
			Timeout: cfg.Inference.Timeout,
		}, logger),
		validator,
		artifacts,
		logger,
	)

	res, err := pipe.Run(ctx, pipeline.Request{FileID: *fileID, FileName: *fileName})
	if err != nil {
		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			fmt.Fprintf(os.Stderr, "extraction failed at %s (%s): %v\n", stageErr.Stage, stageErr.State, stageErr.Err)
			if stageErr.ArtifactPath != "" {
				fmt.Fprintf(os.Stderr, "diagnostic artifact: %s\n", stageErr.ArtifactPath)
			}
		} else {
			fmt.Fprintf(os.Stderr, "extraction failed: %v\n", err)
		}
		os.Exit(1)
	}

	rec := res.Record
	invoices.DeriveTotal(&rec)
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
