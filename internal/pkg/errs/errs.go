package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel error for lookups of unknown objects.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid is the sentinel error for invalid parameter values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange is the sentinel error for values outside an allowed range.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired is the sentinel error for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrUnauthorized is the sentinel error for callers lacking the role an
	// action requires.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidTransition is the sentinel error for settlement actions that are
	// not legal from the order's current status.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInsufficientFunds is the sentinel error for payments below the amount
	// an escrow capture requires.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAlreadyReleased is the sentinel error for attempts to release an escrow
	// whose held amount is already zero.
	ErrAlreadyReleased = errors.New("escrow already released")
)

// sanitize collapses newlines so formatted error messages stay on one line
// in logs regardless of the values interpolated into them.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
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

// ValueIsInvalidError indicates that a parameter holds an invalid value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
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

// ValueIsOutOfRangeError indicates that a value lies outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
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

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
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

// UnauthorizedError indicates that the caller does not hold the role a
// settlement action requires. The message names the required role so the
// caller can correct the request without exposing internal state.
type UnauthorizedError struct {
	RequiredRole string
	Caller       string
	Cause        error
}

// NewUnauthorizedError creates an UnauthorizedError without an underlying cause.
func NewUnauthorizedError(requiredRole, caller string) *UnauthorizedError {
	return &UnauthorizedError{RequiredRole: requiredRole, Caller: caller}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(requiredRole, caller string, cause error) *UnauthorizedError {
	return &UnauthorizedError{RequiredRole: requiredRole, Caller: caller, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: caller %s does not hold the %s role (cause: %s)",
			ErrUnauthorized, e.Caller, e.RequiredRole, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: caller %s does not hold the %s role",
		ErrUnauthorized, e.Caller, e.RequiredRole))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidTransitionError indicates that an action is not legal from the
// order's current status.
type InvalidTransitionError struct {
	Action string
	From   string
	Cause  error
}

// NewInvalidTransitionError creates an InvalidTransitionError without an underlying cause.
func NewInvalidTransitionError(action, from string) *InvalidTransitionError {
	return &InvalidTransitionError{Action: action, From: from}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(action, from string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Action: action, From: from, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s an order in status %s (cause: %s)",
			ErrInvalidTransition, e.Action, e.From, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s an order in status %s",
		ErrInvalidTransition, e.Action, e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InsufficientFundsError indicates that the payment attached to an order
// creation is below the required total. Expected and Provided are amounts in
// the settlement currency's smallest unit, surfaced so the caller can correct
// the request.
type InsufficientFundsError struct {
	Expected int64
	Provided int64
}

// NewInsufficientFundsError creates an InsufficientFundsError.
func NewInsufficientFundsError(expected, provided int64) *InsufficientFundsError {
	return &InsufficientFundsError{Expected: expected, Provided: provided}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: expected at least %d, got %d", ErrInsufficientFunds, e.Expected, e.Provided)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// AlreadyReleasedError indicates a second release attempt against an escrow
// whose held amount is already zero. It guards the single-release invariant.
type AlreadyReleasedError struct {
	OrderID int64
}

// NewAlreadyReleasedError creates an AlreadyReleasedError.
func NewAlreadyReleasedError(orderID int64) *AlreadyReleasedError {
	return &AlreadyReleasedError{OrderID: orderID}
}

func (e *AlreadyReleasedError) Error() string {
	return fmt.Sprintf("%s: order %d", ErrAlreadyReleased, e.OrderID)
}

func (e *AlreadyReleasedError) Unwrap() error {
	return ErrAlreadyReleased
}
