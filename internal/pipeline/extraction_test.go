package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invox/invox/constants"
	"github.com/invox/invox/internal/artifact"
	"github.com/invox/invox/internal/extract"
	"github.com/invox/invox/internal/fetch"
	"github.com/invox/invox/internal/schema"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ []byte) (extract.TextExtractionResult, error) {
	if s.err != nil {
		return extract.TextExtractionResult{}, s.err
	}
	return extract.TextExtractionResult{Text: s.text, Pages: 1}, nil
}

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func pdfServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 stub"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestPipeline(t *testing.T, ex extract.TextExtractor, gen *stubGenerator) (*Extraction, *artifact.Store) {
	t.Helper()
	store, err := artifact.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	validator, err := schema.NewValidator(nil)
	require.NoError(t, err)
	fetcher := fetch.NewFetcher(fetch.Config{}, store, nil)
	return NewExtraction(fetcher, ex, gen, validator, store, nil), store
}

const goodReply = "```json\n" + `{
	"fileId": "ignored",
	"fileName": "inv.pdf",
	"vendor": {"name": "Acme"},
	"invoice": {"number": "INV-001", "date": "2026-01-15", "lineItems": []}
}` + "\n```"

func TestRun_HappyPath(t *testing.T) {
	srv := pdfServer(t)
	gen := &stubGenerator{reply: goodReply}
	pipe, _ := newTestPipeline(t, &stubExtractor{text: "Invoice INV-001 from Acme"}, gen)

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, constants.RunDone, res.State)
	assert.Equal(t, "Acme", res.Record.Vendor.Name)
	assert.Equal(t, "Invoice INV-001 from Acme", res.Text)
	// The extracted text made it into the prompt.
	assert.Contains(t, gen.prompt, "Invoice INV-001 from Acme")
}

func TestRun_MissingInputs(t *testing.T) {
	pipe, _ := newTestPipeline(t, &stubExtractor{}, &stubGenerator{})

	_, err := pipe.Run(context.Background(), Request{FileID: "", FileName: "inv.pdf"})
	require.Error(t, err)
	_, err = pipe.Run(context.Background(), Request{FileID: "http://x", FileName: "  "})
	require.Error(t, err)
}

func TestRun_FetchFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()
	pipe, _ := newTestPipeline(t, &stubExtractor{}, &stubGenerator{})

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, constants.StageFetch, stageErr.Stage)
	assert.Equal(t, constants.RunFetchFailed, stageErr.State)
	assert.Equal(t, constants.RunFetchFailed, res.State)
}

func TestRun_ContentTypeMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>expired link</html>"))
	}))
	defer srv.Close()
	pipe, _ := newTestPipeline(t, &stubExtractor{}, &stubGenerator{})

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, constants.RunContentTypeMismatch, stageErr.State)
	assert.Equal(t, constants.RunContentTypeMismatch, res.State)
	// The response body was preserved for inspection.
	require.NotEmpty(t, stageErr.ArtifactPath)
	saved, readErr := os.ReadFile(stageErr.ArtifactPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(saved), "expired link")
}

func TestRun_ParseFailed(t *testing.T) {
	srv := pdfServer(t)
	pipe, _ := newTestPipeline(t,
		&stubExtractor{err: &extract.DocumentParseError{Err: fmt.Errorf("bad xref")}},
		&stubGenerator{})

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, constants.StageExtract, stageErr.Stage)
	assert.Equal(t, constants.RunParseFailed, res.State)
	// The fetched buffer is preserved so the PDF can be inspected.
	require.NotEmpty(t, stageErr.ArtifactPath)
	saved, readErr := os.ReadFile(stageErr.ArtifactPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(saved), "%PDF-1.4")
}

func TestRun_InferenceFailed(t *testing.T) {
	srv := pdfServer(t)
	pipe, _ := newTestPipeline(t, &stubExtractor{text: "x"},
		&stubGenerator{err: fmt.Errorf("upstream 500")})

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, constants.StageInference, stageErr.Stage)
	assert.Equal(t, constants.RunInferenceFailed, res.State)
}

func TestRun_NoJSONFound(t *testing.T) {
	srv := pdfServer(t)
	pipe, _ := newTestPipeline(t, &stubExtractor{text: "x"},
		&stubGenerator{reply: "I cannot read this document."})

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, constants.RunNoJSONFound, res.State)
	// The raw model reply is preserved.
	require.NotEmpty(t, stageErr.ArtifactPath)
	saved, readErr := os.ReadFile(stageErr.ArtifactPath)
	require.NoError(t, readErr)
	assert.Equal(t, "I cannot read this document.", string(saved))
}

func TestRun_JSONSyntaxInvalid(t *testing.T) {
	srv := pdfServer(t)
	pipe, _ := newTestPipeline(t, &stubExtractor{text: "x"},
		&stubGenerator{reply: "```json\n{\"vendor\": }\n```"})

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, constants.StageSyntax, stageErr.Stage)
	assert.Equal(t, constants.RunJSONSyntaxInvalid, res.State)
	assert.NotEmpty(t, stageErr.ArtifactPath)
}

func TestRun_SchemaInvalid(t *testing.T) {
	srv := pdfServer(t)
	reply := "```json\n" + `{"fileId": "x", "fileName": "inv.pdf", "invoice": {"number": "1", "date": "2026-01-01", "lineItems": []}}` + "\n```"
	pipe, _ := newTestPipeline(t, &stubExtractor{text: "x"}, &stubGenerator{reply: reply})

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, constants.StageSchema, stageErr.Stage)
	assert.Equal(t, constants.RunSchemaInvalid, res.State)

	var valErr *schema.SchemaValidationError
	assert.True(t, errors.As(stageErr.Err, &valErr))
}

func TestRun_LogsEveryStateTransition(t *testing.T) {
	srv := pdfServer(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store, err := artifact.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	validator, err := schema.NewValidator(nil)
	require.NoError(t, err)
	fetcher := fetch.NewFetcher(fetch.Config{}, store, nil)
	pipe := NewExtraction(fetcher, &stubExtractor{text: "x"}, &stubGenerator{reply: goodReply}, validator, store, logger)

	_, err = pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})
	require.NoError(t, err)

	logs := buf.String()
	for _, state := range []constants.RunState{
		constants.RunStarted,
		constants.RunFetched,
		constants.RunTextExtracted,
		constants.RunPromptBuilt,
		constants.RunInferenceReturned,
		constants.RunJSONRecovered,
		constants.RunSyntaxValid,
		constants.RunDone,
	} {
		assert.Contains(t, logs, string(state))
	}
}

func TestRun_EmptyTextStillRuns(t *testing.T) {
	srv := pdfServer(t)
	gen := &stubGenerator{reply: goodReply}
	pipe, _ := newTestPipeline(t, &stubExtractor{text: ""}, gen)

	res, err := pipe.Run(context.Background(), Request{FileID: srv.URL, FileName: "inv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, constants.RunDone, res.State)
	assert.Contains(t, gen.prompt, "PDF TEXT:\n")
}
