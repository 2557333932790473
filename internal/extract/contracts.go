package extract

import "time"

// TextExtractor decodes a document byte stream into a flat text string.
type TextExtractor interface {
	Extract(data []byte) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Duration time.Duration
	Warnings []string
}
