package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt_Deterministic(t *testing.T) {
	a := BuildExtractionPrompt("https://x/inv.pdf", "inv.pdf", "TOTAL 100.00")
	b := BuildExtractionPrompt("https://x/inv.pdf", "inv.pdf", "TOTAL 100.00")
	assert.Equal(t, a, b)
}

func TestBuildExtractionPrompt_EmbedsIdentityAndText(t *testing.T) {
	p := BuildExtractionPrompt("file-123", "march.pdf", "ACME Corp\nInvoice #42")

	assert.Contains(t, p, `"fileId": "file-123"`)
	assert.Contains(t, p, `"fileName": "march.pdf"`)
	assert.Contains(t, p, "PDF TEXT:\nACME Corp\nInvoice #42")
	// The instruction block precedes the document text.
	assert.Contains(t, p, "single JSON object and NOTHING ELSE")
}

func TestBuildExtractionPrompt_EmptyText(t *testing.T) {
	p := BuildExtractionPrompt("id", "empty.pdf", "")
	assert.Contains(t, p, "PDF TEXT:\n")
	assert.Contains(t, p, `"lineItems"`)
}
