package pipeline

import "fmt"

// Error is the only error type Run returns: a wrapper around an
// unrecoverable upstream failure. Per-query and per-source failures are
// absorbed inside the run and never surface here.
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("research pipeline failed at %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
