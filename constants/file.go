package constants

import "strings"

// ContentTypePDF is the content type we expect the blob store to declare for
// source documents.
const ContentTypePDF = "application/pdf"

// MaxPreviewBytes caps the candidate/raw-text previews carried inside error
// values. Full payloads go to the artifact store instead.
const MaxPreviewBytes = 1200

// IsPDFContentType reports whether a declared content type indicates a PDF.
// The check is deliberately loose ("application/pdf; charset=..." and
// "application/x-pdf" both pass), matching what upstream blob stores emit.
func IsPDFContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "pdf")
}
