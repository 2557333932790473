package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invox/invox/constants"
)

func TestRecoverJSON_FencedBlock(t *testing.T) {
	reply := "Here is the result:\n```json\n{\"a\": 1}\n```\nHope that helps!"
	got, err := RecoverJSON(reply)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestRecoverJSON_FenceWithoutLanguageTag(t *testing.T) {
	reply := "```\n{\"a\": 1}\n```"
	got, err := RecoverJSON(reply)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestRecoverJSON_FencePreferredOverBraces(t *testing.T) {
	// Braces outside the fence must not win.
	reply := "{ignored} ```json\n{\"inside\": true}\n``` {also ignored}"
	got, err := RecoverJSON(reply)
	require.NoError(t, err)
	assert.Equal(t, `{"inside": true}`, got)
}

func TestRecoverJSON_BraceSpan(t *testing.T) {
	reply := `The extracted data is {"vendor": {"name": "Acme"}} as requested.`
	got, err := RecoverJSON(reply)
	require.NoError(t, err)
	assert.Equal(t, `{"vendor": {"name": "Acme"}}`, got)
}

func TestRecoverJSON_BraceSpanIsOutermost(t *testing.T) {
	reply := `prefix {"a": {"b": 2}} suffix {"c": 3} end`
	got, err := RecoverJSON(reply)
	require.NoError(t, err)
	// First '{' to last '}': the heuristic takes the widest span.
	assert.Equal(t, `{"a": {"b": 2}} suffix {"c": 3}`, got)
}

func TestRecoverJSON_NoObject(t *testing.T) {
	_, err := RecoverJSON("I could not read the document, sorry.")
	var notFound *NoJSONFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, notFound.Preview, "could not read")
}

func TestRecoverJSON_ReversedBraces(t *testing.T) {
	_, err := RecoverJSON("} backwards {")
	var notFound *NoJSONFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestRecoverJSON_EmptyInput(t *testing.T) {
	_, err := RecoverJSON("")
	var notFound *NoJSONFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Empty(t, notFound.Preview)
}

func TestPreview_Bounded(t *testing.T) {
	long := strings.Repeat("x", constants.MaxPreviewBytes*2)
	assert.Len(t, Preview(long), constants.MaxPreviewBytes)
	assert.Equal(t, "short", Preview("short"))
}
