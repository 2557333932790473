package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invox/invox/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gemini-2.0-flash-exp",
	}, nil)
}

func candidateResponse(texts ...string) map[string]any {
	parts := make([]map[string]any, len(texts))
	for i, s := range texts {
		parts[i] = map[string]any{"text": s}
	}
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": parts}},
		},
	}
}

func TestGenerate_ConcatenatesParts(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		require.NoError(t, json.NewEncoder(w).Encode(candidateResponse("{\"a\":", " 1}")))
	})

	text, err := c.Generate(context.Background(), "extract this")
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, text)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash-exp:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	gen := gotBody["generationConfig"].(map[string]any)
	assert.Equal(t, 0.0, gen["temperature"])
	assert.Equal(t, 0.95, gen["topP"])
	assert.Equal(t, 40.0, gen["topK"])
	assert.Equal(t, 8192.0, gen["maxOutputTokens"])
	assert.Equal(t, "text/plain", gen["responseMimeType"])
}

func TestGenerate_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), "p")
	var infErr *llm.InferenceError
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, "gemini-2.0-flash-exp", infErr.Model)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerate_NoCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, err := c.Generate(context.Background(), "p")
	var infErr *llm.InferenceError
	require.True(t, errors.As(err, &infErr))
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGenerate_MalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.Generate(context.Background(), "p")
	var infErr *llm.InferenceError
	require.True(t, errors.As(err, &infErr))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	assert.Equal(t, "https://generativelanguage.googleapis.com", c.cfg.BaseURL)
	assert.Equal(t, "gemini-2.0-flash-exp", c.cfg.Model)
	assert.Equal(t, llm.DefaultGenerationConfig(), c.cfg.Generation)
}
