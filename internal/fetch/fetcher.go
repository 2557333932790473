package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/invox/invox/constants"
	"github.com/invox/invox/internal/artifact"
)

// Config for the content fetcher.
type Config struct {
	Timeout      time.Duration // http client timeout
	MaxRedirects int           // bounded redirect count
}

// Result is the raw outcome of a successful retrieval.
type Result struct {
	Body        []byte
	ContentType string
	Status      int
}

// Fetcher retrieves raw bytes for a document reference and checks
// transport-level success and declared content type.
type Fetcher struct {
	client    *http.Client
	artifacts *artifact.Store
	logger    *slog.Logger
}

func NewFetcher(cfg Config, artifacts *artifact.Store, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRedirects <= 0 {
		cfg.MaxRedirects = 5
	}
	maxRedirects := cfg.MaxRedirects
	client := &http.Client{
		Timeout: cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
	return &Fetcher{client: client, artifacts: artifacts, logger: logger}
}

// Fetch downloads the document behind ref. fileName is only used to key the
// debug artifact when the content type is wrong.
func (f *Fetcher) Fetch(ctx context.Context, ref, fileName string) (Result, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return Result{}, &FetchError{Ref: ref, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("fetch.transport_error", "ref", ref, "error", err)
		return Result{}, &FetchError{Ref: ref, Err: err}
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			f.logger.Warn("fetch.body_close_error", "ref", ref, "error", cerr)
		}
	}(resp.Body)

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "unknown"
	}

	if resp.StatusCode != http.StatusOK {
		f.logger.Error("fetch.bad_status", "ref", ref, "status", resp.StatusCode, "content_type", contentType)
		return Result{}, &UpstreamStatusError{Ref: ref, Status: resp.StatusCode, ContentType: contentType}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &FetchError{Ref: ref, Err: err}
	}

	if !constants.IsPDFContentType(contentType) {
		// Preserve the body for offline inspection; it is often an HTML error
		// page from the blob store.
		debugPath, saveErr := f.artifacts.Save(fileName+".debug", body)
		if saveErr != nil {
			f.logger.Warn("fetch.debug_artifact_failed", "ref", ref, "error", saveErr)
		}
		f.logger.Error("fetch.unexpected_content_type", "ref", ref, "content_type", contentType, "debug_path", debugPath)
		return Result{}, &UnexpectedContentTypeError{Ref: ref, ContentType: contentType, DebugPath: debugPath}
	}

	f.logger.Info("fetch.ok",
		"ref", ref,
		"bytes", len(body),
		"content_type", contentType,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Body: body, ContentType: contentType, Status: resp.StatusCode}, nil
}
