package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind represents the category of a container error.
type Kind string

const (
	KindUnderflow  Kind = "underflow"
	KindEmpty      Kind = "empty"
	KindFull       Kind = "full"
	KindOutOfRange Kind = "out_of_range"
	KindNotFound   Kind = "not_found"
)

// Sentinels for errors.Is comparisons. A ContainerError matches the
// sentinel of its own Kind regardless of container or operation.
var (
	ErrUnderflow  = &ContainerError{Kind: KindUnderflow}
	ErrEmpty      = &ContainerError{Kind: KindEmpty}
	ErrFull       = &ContainerError{Kind: KindFull}
	ErrOutOfRange = &ContainerError{Kind: KindOutOfRange}
	ErrNotFound   = &ContainerError{Kind: KindNotFound}
)

// ContainerError is a structured error returned by container operations.
type ContainerError struct {
	Kind      Kind
	Container string
	Op        string
	Index     int
	Len       int
	Cause     error
}

// Error implements the error interface.
func (e *ContainerError) Error() string {
	var parts []string

	if e.Container != "" {
		if e.Op != "" {
			parts = append(parts, e.Container+"."+e.Op+":")
		} else {
			parts = append(parts, e.Container+":")
		}
	}

	switch e.Kind {
	case KindUnderflow:
		parts = append(parts, "container is empty")
	case KindEmpty:
		parts = append(parts, "container is empty")
	case KindFull:
		parts = append(parts, "container is full")
	case KindOutOfRange:
		parts = append(parts, fmt.Sprintf("index %d out of range [0:%d)", e.Index, e.Len))
	case KindNotFound:
		parts = append(parts, "key not found")
	default:
		parts = append(parts, string(e.Kind))
	}

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ContainerError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by kind.
func (e *ContainerError) Is(target error) bool {
	var t *ContainerError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}

	return false
}

// WithCause attaches an underlying cause.
func (e *ContainerError) WithCause(cause error) *ContainerError {
	e.Cause = cause

	return e
}

// Error creation functions

// Underflow reports a pop/front/back on an empty sequence.
func Underflow(container, op string) *ContainerError {
	return &ContainerError{Kind: KindUnderflow, Container: container, Op: op}
}

// Empty reports a pop/peek/dequeue on an empty bounded adapter.
func Empty(container, op string) *ContainerError {
	return &ContainerError{Kind: KindEmpty, Container: container, Op: op}
}

// Full reports a push/enqueue on a bounded adapter at capacity.
func Full(container, op string) *ContainerError {
	return &ContainerError{Kind: KindFull, Container: container, Op: op}
}

// OutOfRange reports an indexed access beyond the current size.
func OutOfRange(container, op string, index, length int) *ContainerError {
	return &ContainerError{
		Kind:      KindOutOfRange,
		Container: container,
		Op:        op,
		Index:     index,
		Len:       length,
	}
}

// NotFound reports a lookup of an absent key where the operation errors
// instead of returning a presence flag.
func NotFound(container, op string) *ContainerError {
	return &ContainerError{Kind: KindNotFound, Container: container, Op: op}
}

// KindOf extracts the Kind from err, or "" if err is not a ContainerError.
func KindOf(err error) Kind {
	var ce *ContainerError
	if errors.As(err, &ce) {
		return ce.Kind
	}

	return ""
}

// Is is a convenience re-export so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience re-export so callers need a single errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}
