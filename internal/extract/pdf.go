package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/ledongthuc/pdf"
)

// DocumentParseError is returned when the byte buffer is not a well-formed PDF
// (corrupt header, encrypted or unsupported structure). The triggering buffer
// stays with the caller, which preserves it as a temporary artifact.
type DocumentParseError struct {
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("parse pdf: %v", e.Err)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

// PDFExtractor extracts the text layer of a PDF in reading order: within-page
// fragments joined by a single space, pages joined by a newline.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// Extract returns the flattened text. A document with zero pages or no
// extractable text layer yields "" rather than an error; downstream stages
// handle the empty-text condition.
func (e *PDFExtractor) Extract(data []byte) (res TextExtractionResult, err error) {
	start := time.Now()

	if len(data) == 0 {
		return TextExtractionResult{}, &DocumentParseError{Err: fmt.Errorf("empty buffer")}
	}
	// Cheap magic-byte check before handing the buffer to the decoder; catches
	// the common case of an HTML error page stored where a PDF should be.
	if !filetype.IsType(data, matchers.TypePdf) {
		return TextExtractionResult{}, &DocumentParseError{Err: fmt.Errorf("buffer does not start with a PDF header")}
	}

	// The decoder panics on some malformed cross-reference tables; treat any
	// panic as a parse failure, not a crash.
	defer func() {
		if r := recover(); r != nil {
			err = &DocumentParseError{Err: fmt.Errorf("decoder panic: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return TextExtractionResult{}, &DocumentParseError{Err: err}
	}

	numPages := reader.NumPage()
	var warnings []string
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rErr := page.GetTextByRow()
		if rErr != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, rErr))
			continue
		}
		var fragments []string
		for _, row := range rows {
			for _, word := range row.Content {
				if word.S != "" {
					fragments = append(fragments, word.S)
				}
			}
		}
		pages = append(pages, strings.Join(fragments, " "))
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	e.logger.Debug("extract.pdf_text",
		"pages", numPages,
		"bytes", len(data),
		"text_len", len(text),
		"warnings", len(warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return TextExtractionResult{
		Text:     text,
		Pages:    numPages,
		Duration: time.Since(start),
		Warnings: warnings,
	}, nil
}
