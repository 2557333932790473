package fetch

import "fmt"

// FetchError is returned when the transport call itself fails (DNS, timeout,
// connection reset). It is never retried automatically; the caller decides.
type FetchError struct {
	Ref string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %q: %v", e.Ref, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// UpstreamStatusError is returned when the content source answers with a
// non-200 status. Status and content type are carried for diagnostics.
type UpstreamStatusError struct {
	Ref         string
	Status      int
	ContentType string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("fetch %q: upstream returned status %d (content-type %q)", e.Ref, e.Status, e.ContentType)
}

// UnexpectedContentTypeError is returned when the declared content type does
// not indicate a PDF. DebugPath points at the preserved response body.
type UnexpectedContentTypeError struct {
	Ref         string
	ContentType string
	DebugPath   string
}

func (e *UnexpectedContentTypeError) Error() string {
	return fmt.Sprintf("fetch %q: resource is not a PDF (content-type %q, body saved to %s)", e.Ref, e.ContentType, e.DebugPath)
}
