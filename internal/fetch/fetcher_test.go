package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invox/invox/internal/artifact"
)

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	store, err := artifact.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	return NewFetcher(Config{}, store, nil)
}

func TestFetch_PDF(t *testing.T) {
	body := []byte("%PDF-1.4 fake body")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	res, err := f.Fetch(context.Background(), srv.URL, "inv.pdf")
	require.NoError(t, err)
	assert.Equal(t, body, res.Body)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestFetch_LooseContentTypeMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "binary/pdf; charset=binary")
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), srv.URL, "inv.pdf")
	assert.NoError(t, err)
}

func TestFetch_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), srv.URL, "inv.pdf")

	var statusErr *UpstreamStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
	assert.Equal(t, srv.URL, statusErr.Ref)
}

func TestFetch_UnexpectedContentTypeSavesBody(t *testing.T) {
	html := []byte("<html><body>expired signature</body></html>")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write(html)
	}))
	defer srv.Close()

	store, err := artifact.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	f := NewFetcher(Config{}, store, nil)

	_, err = f.Fetch(context.Background(), srv.URL, "inv.pdf")

	var ctErr *UnexpectedContentTypeError
	require.True(t, errors.As(err, &ctErr))
	assert.Equal(t, "text/html", ctErr.ContentType)
	require.NotEmpty(t, ctErr.DebugPath)

	saved, err := os.ReadFile(ctErr.DebugPath)
	require.NoError(t, err)
	assert.Equal(t, html, saved)
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	f := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), srv.URL, "inv.pdf")

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
}

func TestFetch_InvalidRef(t *testing.T) {
	f := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), "://not-a-url", "inv.pdf")

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
}

func TestFetch_RedirectLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL, http.StatusFound)
	}))
	defer srv.Close()

	store, err := artifact.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	f := NewFetcher(Config{MaxRedirects: 2}, store, nil)

	_, err = f.Fetch(context.Background(), srv.URL, "inv.pdf")
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, err.Error(), "redirects")
}
