package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrConflict           = errors.New("conflict")
	ErrTimeout            = errors.New("timeout")
	ErrBackingStore       = errors.New("backing store error")
)

const (
	errCauseFormat          = "%s (cause: %v)"
	errObjectNotFoundFormat = "%s: param is: %s, ID is: %s"
)

// ObjectNotFoundError reports a missing entity.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		msg := fmt.Sprintf(errObjectNotFoundFormat, ErrObjectNotFound, e.ParamName, sanitize(e.ID))
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed input value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %v, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing input value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// PreconditionFailedError reports an operation that is not allowed in the
// current state of an entity. Code is the machine-readable reason.
type PreconditionFailedError struct {
	Code   string
	Reason string
	Cause  error
}

func NewPreconditionFailedError(code, reason string) *PreconditionFailedError {
	return &PreconditionFailedError{Code: code, Reason: reason}
}

func NewPreconditionFailedErrorWithCause(code, reason string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Code: code, Reason: reason, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Reason)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

func (e *PreconditionFailedError) ErrorCode() string {
	return e.Code
}

// Is matches another PreconditionFailedError with the same non-empty code, so
// a sentinel declared once matches instances built with a specific reason.
func (e *PreconditionFailedError) Is(target error) bool {
	t, ok := target.(*PreconditionFailedError)
	return ok && t.Code != "" && t.Code == e.Code
}

// ConflictError reports an idempotency guard: the work was already done or
// is already in progress elsewhere.
type ConflictError struct {
	Code   string
	Reason string
	Cause  error
}

func NewConflictError(code, reason string) *ConflictError {
	return &ConflictError{Code: code, Reason: reason}
}

func NewConflictErrorWithCause(code, reason string, cause error) *ConflictError {
	return &ConflictError{Code: code, Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrConflict, e.Reason)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func (e *ConflictError) ErrorCode() string {
	return e.Code
}

func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	return ok && t.Code != "" && t.Code == e.Code
}

// TimeoutError reports that a deadline elapsed before Operation finished.
// Both ErrTimeout and the cause are reachable through errors.Is.
type TimeoutError struct {
	Operation string
	Cause     error
}

func NewTimeoutError(operation string, cause error) *TimeoutError {
	return &TimeoutError{Operation: operation, Cause: cause}
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrTimeout, e.Operation)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *TimeoutError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTimeout}
	}
	return []error{ErrTimeout, e.Cause}
}

// BackingStoreError wraps an opaque persistence failure.
type BackingStoreError struct {
	Operation string
	Cause     error
}

func NewBackingStoreError(operation string, cause error) *BackingStoreError {
	return &BackingStoreError{Operation: operation, Cause: cause}
}

func (e *BackingStoreError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrBackingStore, e.Operation)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *BackingStoreError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrBackingStore}
	}
	return []error{ErrBackingStore, e.Cause}
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
