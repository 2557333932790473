package extract

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a minimal single-page PDF containing text, with a
// correctly computed cross-reference table.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)
	return buf.Bytes()
}

func TestExtract_SinglePage(t *testing.T) {
	e := NewPDFExtractor(nil)

	res, err := e.Extract(buildPDF(t, "Invoice INV-001 Total 118.00"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "INV-001")
	assert.Contains(t, res.Text, "118.00")
	assert.Empty(t, res.Warnings)
}

func TestExtract_EmptyBuffer(t *testing.T) {
	e := NewPDFExtractor(nil)

	_, err := e.Extract(nil)
	var parseErr *DocumentParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestExtract_NotAPDF(t *testing.T) {
	e := NewPDFExtractor(nil)

	_, err := e.Extract([]byte("<html><body>Access denied</body></html>"))
	var parseErr *DocumentParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, err.Error(), "PDF header")
}

func TestExtract_CorruptBody(t *testing.T) {
	e := NewPDFExtractor(nil)

	// Correct magic bytes, garbage structure. Whether the decoder errors or
	// panics internally, the caller sees a parse error.
	data := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{0xde, 0xad}, 64)...)
	_, err := e.Extract(data)
	var parseErr *DocumentParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestExtract_TruncatedXref(t *testing.T) {
	e := NewPDFExtractor(nil)

	full := buildPDF(t, "Hello")
	truncated := full[:len(full)-40]
	_, err := e.Extract(truncated)
	var parseErr *DocumentParseError
	require.True(t, errors.As(err, &parseErr))
}
