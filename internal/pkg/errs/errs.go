package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy.
// Each has a corresponding struct type carrying details and an optional cause.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrResourceConflict    = errors.New("resource conflict")
	ErrTransitionForbidden = errors.New("transition is forbidden")
	ErrComputationFallback = errors.New("computation fell back to default")
)

// sanitize collapses newlines so error messages stay on a single log line.
func sanitize(value any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%s", value), "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a provided value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitizeValue(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// sanitizeValue preserves non-string formatting while still collapsing newlines in strings.
func sanitizeValue(value any) any {
	if s, ok := value.(string); ok {
		return sanitize(s)
	}
	return value
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ResourceConflictError indicates that a shared resource cannot accept a new
// reservation: the resource is already held, or the requested time window
// overlaps an existing reservation.
type ResourceConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewResourceConflictError creates a ResourceConflictError without a cause.
func NewResourceConflictError(paramName string, id any) *ResourceConflictError {
	return &ResourceConflictError{ParamName: paramName, ID: id}
}

// NewResourceConflictErrorWithCause creates a ResourceConflictError wrapping an underlying cause.
func NewResourceConflictErrorWithCause(paramName string, id any, cause error) *ResourceConflictError {
	return &ResourceConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ResourceConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrResourceConflict, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrResourceConflict, e.ParamName, sanitize(e.ID))
}

func (e *ResourceConflictError) Unwrap() error {
	return ErrResourceConflict
}

// TransitionForbiddenError indicates that a reservation status transition is not
// permitted, either because the target status is unreachable from the current one
// or because the acting role lacks the capability.
type TransitionForbiddenError struct {
	From  string
	To    string
	Role  string
	Cause error
}

// NewTransitionForbiddenError creates a TransitionForbiddenError for an illegal
// from->to transition attempted by the given role.
func NewTransitionForbiddenError(from, to, role string) *TransitionForbiddenError {
	return &TransitionForbiddenError{From: from, To: to, Role: role}
}

// NewTransitionForbiddenErrorWithCause creates a TransitionForbiddenError wrapping an underlying cause.
func NewTransitionForbiddenErrorWithCause(from, to, role string, cause error) *TransitionForbiddenError {
	return &TransitionForbiddenError{From: from, To: to, Role: role, Cause: cause}
}

func (e *TransitionForbiddenError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s (role: %s)", ErrTransitionForbidden, e.From, e.To, e.Role)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *TransitionForbiddenError) Unwrap() error {
	return ErrTransitionForbidden
}

// ComputationFallbackError reports that a computation hit an internal fault and
// degraded to a safe default instead of failing. It is informational: callers
// log it and proceed with the fallback result.
type ComputationFallbackError struct {
	ParamName string
	Cause     error
}

// NewComputationFallbackError creates a ComputationFallbackError without a cause.
func NewComputationFallbackError(paramName string) *ComputationFallbackError {
	return &ComputationFallbackError{ParamName: paramName}
}

// NewComputationFallbackErrorWithCause creates a ComputationFallbackError wrapping an underlying cause.
func NewComputationFallbackErrorWithCause(paramName string, cause error) *ComputationFallbackError {
	return &ComputationFallbackError{ParamName: paramName, Cause: cause}
}

func (e *ComputationFallbackError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrComputationFallback, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrComputationFallback, e.ParamName)
}

func (e *ComputationFallbackError) Unwrap() error {
	return ErrComputationFallback
}
