package pipeline

import (
	"fmt"

	"github.com/invox/invox/constants"
)

// StageError is the pipeline-boundary wrapper for a stage-local failure. It
// carries the stage, the terminal state, the underlying error, and the path of
// the preserved diagnostic artifact when one was written. Callers can
// errors.As/Is through it to the stage error types.
type StageError struct {
	Stage        constants.Stage
	State        constants.RunState
	ArtifactPath string
	Err          error
}

func (e *StageError) Error() string {
	if e.ArtifactPath != "" {
		return fmt.Sprintf("stage %s: %v (artifact: %s)", e.Stage, e.Err, e.ArtifactPath)
	}
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
