package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/invox/invox/constants"
	"github.com/invox/invox/internal/artifact"
	"github.com/invox/invox/internal/entity"
	"github.com/invox/invox/internal/extract"
	"github.com/invox/invox/internal/fetch"
	"github.com/invox/invox/internal/llm"
	"github.com/invox/invox/internal/schema"
)

// Request identifies one document to extract.
type Request struct {
	FileID   string // opaque reference (typically a URL) to the stored PDF
	FileName string
}

// Result is the outcome of a completed run.
type Result struct {
	Record entity.InvoiceRecord
	Text   string // extracted text, kept for callers that want to show it
	State  constants.RunState
}

// Extraction coordinates one-shot runs through the stage chain:
// fetch -> text extract -> prompt -> inference -> recover -> validate.
// Stages are strictly sequential; there is no retry or backtracking. Failures
// come back as *StageError naming the stage, with diagnostics preserved in the
// artifact store under unique names, so concurrent runs never collide.
type Extraction struct {
	fetcher   *fetch.Fetcher
	extractor extract.TextExtractor
	generator llm.TextGenerator
	validator *schema.Validator
	artifacts *artifact.Store
	logger    *slog.Logger
}

func NewExtraction(
	fetcher *fetch.Fetcher,
	extractor extract.TextExtractor,
	generator llm.TextGenerator,
	validator *schema.Validator,
	artifacts *artifact.Store,
	logger *slog.Logger,
) *Extraction {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extraction{
		fetcher:   fetcher,
		extractor: extractor,
		generator: generator,
		validator: validator,
		artifacts: artifacts,
		logger:    logger,
	}
}

// Run executes a single extraction. The returned record has passed full schema
// validation; persistence is the caller's decision.
func (p *Extraction) Run(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	if strings.TrimSpace(req.FileID) == "" || strings.TrimSpace(req.FileName) == "" {
		return Result{}, fmt.Errorf("fileId and fileName are required")
	}
	p.logger.Info("pipeline.start",
		"file_id", req.FileID,
		"file_name", req.FileName,
		"state", string(constants.RunStarted),
	)

	// Fetch
	fetched, err := p.fetcher.Fetch(ctx, req.FileID, req.FileName)
	if err != nil {
		var ctErr *fetch.UnexpectedContentTypeError
		if errors.As(err, &ctErr) {
			return Result{State: constants.RunContentTypeMismatch}, &StageError{
				Stage:        constants.StageFetch,
				State:        constants.RunContentTypeMismatch,
				ArtifactPath: ctErr.DebugPath,
				Err:          err,
			}
		}
		return Result{State: constants.RunFetchFailed}, &StageError{
			Stage: constants.StageFetch,
			State: constants.RunFetchFailed,
			Err:   err,
		}
	}

	p.transition(constants.StageFetch, constants.RunFetched, req.FileName)

	// Keep the fetched buffer around so a parse failure is inspectable.
	bufPath, saveErr := p.artifacts.Save(req.FileName, fetched.Body)
	if saveErr != nil {
		p.logger.Warn("pipeline.buffer_artifact_failed", "file_name", req.FileName, "error", saveErr)
	}

	// Text extract
	extracted, err := p.extractor.Extract(fetched.Body)
	if err != nil {
		return Result{State: constants.RunParseFailed}, &StageError{
			Stage:        constants.StageExtract,
			State:        constants.RunParseFailed,
			ArtifactPath: bufPath,
			Err:          err,
		}
	}
	p.transition(constants.StageExtract, constants.RunTextExtracted, req.FileName)
	if extracted.Text == "" {
		// Zero pages or no text layer. Not a failure: the prompt will most
		// likely elicit an empty-shaped reply that fails validation normally.
		p.logger.Warn("pipeline.extract.empty_text", "file_name", req.FileName, "pages", extracted.Pages)
	}

	// Prompt (pure, cannot fail)
	prompt := llm.BuildExtractionPrompt(req.FileID, req.FileName, extracted.Text)
	p.transition(constants.StagePrompt, constants.RunPromptBuilt, req.FileName)

	// Inference
	reply, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return Result{State: constants.RunInferenceFailed}, &StageError{
			Stage: constants.StageInference,
			State: constants.RunInferenceFailed,
			Err:   err,
		}
	}

	p.transition(constants.StageInference, constants.RunInferenceReturned, req.FileName)

	// Recover a candidate JSON object from the free-text reply.
	candidate, err := llm.RecoverJSON(reply)
	if err != nil {
		replyPath := p.saveReply(req.FileName, reply)
		return Result{State: constants.RunNoJSONFound}, &StageError{
			Stage:        constants.StageRecover,
			State:        constants.RunNoJSONFound,
			ArtifactPath: replyPath,
			Err:          err,
		}
	}

	p.transition(constants.StageRecover, constants.RunJSONRecovered, req.FileName)

	// Validate: strict parse then schema.
	rec, err := p.validator.ValidateRecord([]byte(candidate))
	if err != nil {
		replyPath := p.saveReply(req.FileName, reply)
		var synErr *schema.JSONSyntaxError
		if errors.As(err, &synErr) {
			return Result{State: constants.RunJSONSyntaxInvalid}, &StageError{
				Stage:        constants.StageSyntax,
				State:        constants.RunJSONSyntaxInvalid,
				ArtifactPath: replyPath,
				Err:          err,
			}
		}
		return Result{State: constants.RunSchemaInvalid}, &StageError{
			Stage:        constants.StageSchema,
			State:        constants.RunSchemaInvalid,
			ArtifactPath: replyPath,
			Err:          err,
		}
	}

	p.transition(constants.StageSyntax, constants.RunSyntaxValid, req.FileName)

	p.logger.Info("pipeline.done",
		"file_name", req.FileName,
		"state", string(constants.RunDone),
		"vendor", rec.Vendor.Name,
		"number", rec.Invoice.Number,
		"line_items", len(rec.Invoice.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Record: rec, Text: extracted.Text, State: constants.RunDone}, nil
}

// transition records a completed stage at debug level so a run can be traced
// through every intermediate state without raising the log volume at info.
func (p *Extraction) transition(stage constants.Stage, state constants.RunState, fileName string) {
	p.logger.Debug("pipeline.state",
		"stage", string(stage),
		"state", string(state),
		"file_name", fileName,
	)
}

// saveReply preserves the raw inference output for offline inspection.
func (p *Extraction) saveReply(fileName, reply string) string {
	path, err := p.artifacts.Save("ai-"+fileName+".txt", []byte(reply))
	if err != nil {
		p.logger.Warn("pipeline.reply_artifact_failed", "file_name", fileName, "error", err)
		return ""
	}
	return path
}
