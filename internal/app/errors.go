package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoInput indicates no input path or URL was given.
	ErrNoInput = errors.New("no input given")

	// ErrAlreadyEncoded indicates a dump was requested for an input that
	// is already an encoded text video.
	ErrAlreadyEncoded = errors.New("input is already an encoded text video")

	// ErrNoOutputName indicates no collision-free dump output name could
	// be found.
	ErrNoOutputName = errors.New("no available output name")
)

// OperationError wraps a failure with the operation and target it hit.
type OperationError struct {
	Op      string // Operation name, e.g. "play", "dump", "open"
	Target  string // Input path, URL, or output file
	Context string // Additional detail, e.g. decoder stderr
	Err     error
}

// NewOperationError creates an OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

// WithContext adds detail to the error. Safe on a nil receiver.
func (e *OperationError) WithContext(ctx string) *OperationError {
	if e == nil {
		return nil
	}
	e.Context = ctx
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Context != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Context)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches both the wrapper instance and the wrapped error.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*OperationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}
