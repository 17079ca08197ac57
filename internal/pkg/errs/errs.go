package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the generic error kinds. Concrete error types wrap
// these so callers can classify failures with errors.Is without depending
// on the concrete struct.
var (
	// ErrObjectNotFound indicates a lookup for a missing object.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid indicates a value that fails validation rules.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange indicates a value outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired indicates a missing required value.
	ErrValueIsRequired = errors.New("value is required")
	// ErrVersionIsInvalid indicates an invalid aggregate version.
	ErrVersionIsInvalid = errors.New("version is invalid")
)

// Sentinel errors for the domain-specific error kinds.
var (
	// ErrInvalidState indicates an operation attempted in a status that forbids it.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotCancellable indicates a cancellation attempt outside the cancellable statuses.
	ErrNotCancellable = errors.New("not cancellable")
	// ErrCurrencyMismatch indicates arithmetic between two different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrNegativeResult indicates a money operation that would produce a negative amount.
	ErrNegativeResult = errors.New("result cannot be negative")
	// ErrDivideByZero indicates a money division by a zero scalar.
	ErrDivideByZero = errors.New("cannot divide by zero")
	// ErrInsufficientFunds indicates a cash payment below the amount due.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientCapacity indicates a courier or cook at maximum load.
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	// ErrValidationFailed indicates an aggregated list of validator violations.
	ErrValidationFailed = errors.New("validation failed")
)

// sanitize strips newlines from error messages so a single error always
// renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError is returned when an object cannot be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value lies outside its allowed bounds.
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

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError is returned when an aggregate version is invalid.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping a cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidStateError is returned when an operation is attempted in a status
// that forbids it, such as editing a confirmed order or double-starting
// payment processing.
type InvalidStateError struct {
	Operation string
	Status    string
}

// NewInvalidStateError creates an InvalidStateError for the given operation and status.
func NewInvalidStateError(operation, status string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot %s in status %s", ErrInvalidState, e.Operation, e.Status))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// NotCancellableError is returned when an order cancellation is attempted
// outside the cancellable statuses.
type NotCancellableError struct {
	Status string
}

// NewNotCancellableError creates a NotCancellableError for the given status.
func NewNotCancellableError(status string) *NotCancellableError {
	return &NotCancellableError{Status: status}
}

func (e *NotCancellableError) Error() string {
	return sanitize(fmt.Sprintf("%s: order in status %s", ErrNotCancellable, e.Status))
}

func (e *NotCancellableError) Unwrap() error {
	return ErrNotCancellable
}

// CurrencyMismatchError is returned when a money operation involves two
// different currencies. Currencies are never coerced silently.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

// NewCurrencyMismatchError creates a CurrencyMismatchError for the given currency pair.
func NewCurrencyMismatchError(left, right string) *CurrencyMismatchError {
	return &CurrencyMismatchError{Left: left, Right: right}
}

func (e *CurrencyMismatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s vs %s", ErrCurrencyMismatch, e.Left, e.Right))
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// InsufficientFundsError is returned when a provided cash amount does not
// cover the amount due.
type InsufficientFundsError struct {
	Provided string
	Required string
}

// NewInsufficientFundsError creates an InsufficientFundsError for the given amounts.
func NewInsufficientFundsError(provided, required string) *InsufficientFundsError {
	return &InsufficientFundsError{Provided: provided, Required: required}
}

func (e *InsufficientFundsError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s provided, %s required", ErrInsufficientFunds, e.Provided, e.Required))
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// InsufficientCapacityError is returned when a courier or cook is already
// carrying its maximum concurrent load.
type InsufficientCapacityError struct {
	Resource string
	Limit    int
}

// NewInsufficientCapacityError creates an InsufficientCapacityError for the given resource.
func NewInsufficientCapacityError(resource string, limit int) *InsufficientCapacityError {
	return &InsufficientCapacityError{Resource: resource, Limit: limit}
}

func (e *InsufficientCapacityError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is at max load (%d)", ErrInsufficientCapacity, e.Resource, e.Limit))
}

func (e *InsufficientCapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}

// ValidationError aggregates the human-readable violations produced by a
// validator. It is the only error kind intended for large, joined messages.
type ValidationError struct {
	Entity     string
	Violations []string
}

// NewValidationError creates a ValidationError for the given entity and violations.
func NewValidationError(entity string, violations []string) *ValidationError {
	return &ValidationError{Entity: entity, Violations: violations}
}

func (e *ValidationError) Error() string {
	return sanitize(fmt.Sprintf("%s %s: %s", e.Entity, ErrValidationFailed, strings.Join(e.Violations, ", ")))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
