package async

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invox/invox/constants"
	"github.com/invox/invox/internal/artifact"
	"github.com/invox/invox/internal/extract"
	"github.com/invox/invox/internal/fetch"
	"github.com/invox/invox/internal/llm"
	"github.com/invox/invox/internal/pipeline"
	"github.com/invox/invox/internal/schema"
)

type staticExtractor struct{}

func (staticExtractor) Extract(_ []byte) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: "some invoice text", Pages: 1}, nil
}

type countingGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *countingGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return `{"fileId": "x", "fileName": "inv.pdf", "vendor": {"name": "Acme"},
		"invoice": {"number": "1", "date": "2026-01-01", "lineItems": []}}`, nil
}

var _ llm.TextGenerator = (*countingGenerator)(nil)

func newTestRunner(t *testing.T, workers int) (*Runner, *countingGenerator, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 stub"))
	}))
	t.Cleanup(srv.Close)

	store, err := artifact.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	validator, err := schema.NewValidator(nil)
	require.NoError(t, err)
	gen := &countingGenerator{}
	pipe := pipeline.NewExtraction(
		fetch.NewFetcher(fetch.Config{}, store, nil),
		staticExtractor{}, gen, validator, store, nil,
	)
	return NewRunner(pipe, nil, WithWorkers(workers)), gen, srv
}

func TestRunnerSubmit(t *testing.T) {
	runner, gen, srv := newTestRunner(t, 2)
	defer runner.Shutdown(context.Background())

	res, err := runner.Submit(context.Background(), pipeline.Request{FileID: srv.URL, FileName: "inv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, constants.RunDone, res.State)
	assert.Equal(t, "Acme", res.Record.Vendor.Name)
	assert.Equal(t, 1, gen.calls)
}

func TestRunnerSubmit_Concurrent(t *testing.T) {
	runner, gen, srv := newTestRunner(t, 4)
	defer runner.Shutdown(context.Background())

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = runner.Submit(context.Background(), pipeline.Request{FileID: srv.URL, FileName: "inv.pdf"})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, n, gen.calls)
}

func TestRunnerSubmit_AfterShutdown(t *testing.T) {
	runner, _, srv := newTestRunner(t, 1)
	runner.Shutdown(context.Background())

	_, err := runner.Submit(context.Background(), pipeline.Request{FileID: srv.URL, FileName: "inv.pdf"})
	assert.ErrorIs(t, err, ErrShuttingDown)

	// Shutdown twice is a no-op.
	runner.Shutdown(context.Background())
}

func TestRunnerSubmit_CanceledContext(t *testing.T) {
	runner, _, srv := newTestRunner(t, 1)
	defer runner.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runner.Submit(ctx, pipeline.Request{FileID: srv.URL, FileName: "inv.pdf"})
	assert.ErrorIs(t, err, context.Canceled)
}
