package llm

import (
	"context"
	"fmt"
)

// GenerationConfig pins the decoding parameters for extraction runs.
// Temperature 0 and fixed sampling parameters request maximal determinism;
// the model is still not guaranteed to be deterministic.
type GenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	ResponseFormat  string  `json:"responseFormat"` // MIME type of the reply
}

// DefaultGenerationConfig returns the fixed parameters used by the pipeline.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0,
		TopP:            0.95,
		TopK:            40,
		MaxOutputTokens: 8192,
		ResponseFormat:  "text/plain",
	}
}

// TextGenerator is the inference collaborator the pipeline depends on: it
// either returns raw text (not guaranteed to be JSON) or an *InferenceError.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InferenceError wraps any failure inside the inference collaborator.
type InferenceError struct {
	Model string
	Err   error
}

func (e *InferenceError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("inference (%s): %v", e.Model, e.Err)
	}
	return fmt.Sprintf("inference: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
