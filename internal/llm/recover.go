package llm

import (
	"regexp"
	"strings"

	"github.com/invox/invox/constants"
)

// Matches the first triple-backtick block, optionally tagged json.
var fenceRE = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// NoJSONFoundError is returned when no JSON-object-shaped substring could be
// recovered from model output. The full raw text is preserved by the caller as
// a diagnostic artifact; Preview is a bounded excerpt for the error payload.
type NoJSONFoundError struct {
	Preview string
}

func (e *NoJSONFoundError) Error() string {
	return "no JSON object found in model output"
}

// RecoverJSON extracts a single candidate JSON object substring from arbitrary
// surrounding text, in priority order:
//
//  1. the trimmed interior of the first fenced code block;
//  2. the inclusive span from the first '{' to the last '}' when ordered.
//
// This is a heuristic, not a parser: brace balance is not verified, so a
// textually plausible but semantically wrong slice is possible. The strict
// parse stage is the correctness backstop.
func RecoverJSON(s string) (string, error) {
	if m := fenceRE.FindStringSubmatch(s); m != nil && m[1] != "" {
		return strings.TrimSpace(m[1]), nil
	}
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first >= 0 && last > first {
		return s[first : last+1], nil
	}
	return "", &NoJSONFoundError{Preview: Preview(s)}
}

// Preview truncates s for embedding in error payloads.
func Preview(s string) string {
	if len(s) > constants.MaxPreviewBytes {
		return s[:constants.MaxPreviewBytes]
	}
	return s
}
