package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Category errors
	ErrMsgNotFound     = "not found"
	ErrMsgValidation   = "validation failed"
	ErrMsgTransientIO  = "remote call failed"
	ErrMsgUnauthorized = "unauthorized"

	// Account errors
	ErrMsgAccountBanned     = "account is banned"
	ErrMsgSpinInProgress    = "a spin is already in progress"
	ErrMsgNotInInventory    = "item not in inventory"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Input errors
	ErrMsgInvalidAmount = "invalid amount"
	ErrMsgEmptyHandle   = "handle is required"
	ErrMsgInvalidInput  = "invalid input"

	// Catalog errors
	ErrMsgEmptyCatalog  = "catalog is empty"
	ErrMsgInvalidWeight = "weight must be positive"
)

// Error categories. Every error returned by a service matches exactly one of these
// through errors.Is, which is what the HTTP layer switches on.
var (
	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrValidation   = errors.New(ErrMsgValidation)
	ErrTransientIO  = errors.New(ErrMsgTransientIO)
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// NotFound
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("item %w", ErrNotFound)
	ErrNotInInventory  = fmt.Errorf("%s: %w", ErrMsgNotInInventory, ErrNotFound)

	// Validation
	ErrInvalidInput      = fmt.Errorf("%s: %w", ErrMsgInvalidInput, ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%s: %w", ErrMsgInvalidAmount, ErrValidation)
	ErrEmptyHandle       = fmt.Errorf("%s: %w", ErrMsgEmptyHandle, ErrValidation)
	ErrInsufficientFunds = fmt.Errorf("%s: %w", ErrMsgInsufficientFunds, ErrValidation)
	ErrSpinInProgress    = fmt.Errorf("%s: %w", ErrMsgSpinInProgress, ErrValidation)
	ErrAccountBanned     = fmt.Errorf("%s: %w", ErrMsgAccountBanned, ErrValidation)
	ErrEmptyCatalog      = fmt.Errorf("%s: %w", ErrMsgEmptyCatalog, ErrValidation)
	ErrInvalidWeight     = fmt.Errorf("%s: %w", ErrMsgInvalidWeight, ErrValidation)
)

// IOError wraps a failed remote persistence call. It matches ErrTransientIO so
// callers can tell "the store said no" apart from "the store could not be reached".
type IOError struct {
	Op  string
	Err error
}

// NewIOError wraps err as a transient persistence failure of op.
func NewIOError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrMsgTransientIO, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports category membership.
func (e *IOError) Is(target error) bool { return target == ErrTransientIO }

// ErrorKind names an error category for logs and metrics labels.
type ErrorKind string

const (
	KindNone         ErrorKind = ""
	KindNotFound     ErrorKind = "not_found"
	KindValidation   ErrorKind = "validation"
	KindTransientIO  ErrorKind = "transient_io"
	KindUnauthorized ErrorKind = "unauthorized"
	KindInternal     ErrorKind = "internal"
)

// KindOf classifies err into one of the four categories.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrTransientIO):
		return KindTransientIO
	default:
		return KindInternal
	}
}
