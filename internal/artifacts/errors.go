package artifacts

import (
	"errors"
	"fmt"
)

// ErrResultsNotFound indicates no results artifact exists for the workflow.
// Distinguished from read failures so callers can answer "not yet computed"
// without inspecting I/O errors.
var ErrResultsNotFound = errors.New("results not found")

// WriteError wraps a failed artifact write with the workflow and operation
// it belonged to.
type WriteError struct {
	WorkflowID string
	Op         string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s failed for workflow %s: %v", e.Op, e.WorkflowID, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ReadError wraps a failed or malformed artifact read with the workflow and
// operation it belonged to.
type ReadError struct {
	WorkflowID string
	Op         string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s failed for workflow %s: %v", e.Op, e.WorkflowID, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
