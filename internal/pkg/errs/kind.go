package errs

import (
	"context"
	"errors"
)

// Kind is the machine-readable class of a failure.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindInvalidInput       Kind = "invalid_input"
	KindPreconditionFailed Kind = "precondition_failed"
	KindConflict           Kind = "conflict"
	KindTimeout            Kind = "timeout"
	KindBackingStore       Kind = "backing_store"
	KindInternal           Kind = "internal"
)

// KindOf classifies err. Unclassified errors are KindInternal; a bare
// context.DeadlineExceeded is treated as a timeout.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsRequired), errors.Is(err, ErrValueIsInvalid), errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidInput
	case errors.Is(err, ErrPreconditionFailed):
		return KindPreconditionFailed
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrBackingStore):
		return KindBackingStore
	default:
		return KindInternal
	}
}

type coded interface {
	ErrorCode() string
}

// CodeOf returns the most specific code carried by err, falling back to its kind.
func CodeOf(err error) string {
	var c coded
	if errors.As(err, &c) && c.ErrorCode() != "" {
		return c.ErrorCode()
	}
	return string(KindOf(err))
}
