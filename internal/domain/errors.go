package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Kind messages
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgNotFound          = "not found"
	ErrMsgConflict          = "conflict"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInsufficientItems = "insufficient items"
	ErrMsgForbidden         = "forbidden"
	ErrMsgStoreUnavailable  = "store unavailable"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Error kinds. Every error returned by a service wraps exactly one of these,
// so callers classify failures with errors.Is or KindOf.
var (
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrConflict          = errors.New(ErrMsgConflict)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientItems = errors.New(ErrMsgInsufficientItems)
	ErrForbidden         = errors.New(ErrMsgForbidden)

	// ErrStoreUnavailable marks backing-store failures. They are retryable.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)

// Specific errors, each wrapping its kind.
var (
	// Not found
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrCharacterNotFound  = fmt.Errorf("character %w", ErrNotFound)
	ErrItemNotFound       = fmt.Errorf("item %w", ErrNotFound)
	ErrItemNotInInventory = fmt.Errorf("item not in inventory: %w", ErrNotFound)
	ErrNotEquipped        = fmt.Errorf("item is not equipped: %w", ErrNotFound)

	// Conflict
	ErrAlreadyEquipped   = fmt.Errorf("item is already equipped: %w", ErrConflict)
	ErrDuplicateItemCode = fmt.Errorf("item code already exists: %w", ErrConflict)
	ErrDuplicateName     = fmt.Errorf("character name already exists: %w", ErrConflict)
	ErrDuplicateUsername = fmt.Errorf("username already exists: %w", ErrConflict)
	// ErrCapacityExceeded means stored state cannot absorb the change, such as
	// a balance or stack that would pass its storable maximum.
	ErrCapacityExceeded = fmt.Errorf("value exceeds storable range: %w", ErrConflict)

	// Validation
	ErrPriceImmutable = fmt.Errorf("item price cannot be changed: %w", ErrInvalidInput)
	ErrEmptyLines     = fmt.Errorf("at least one item line is required: %w", ErrInvalidInput)
	ErrInvalidCount   = fmt.Errorf("count must be a positive integer no greater than 1000000: %w", ErrInvalidInput)
	ErrInvalidCode    = fmt.Errorf("item code must be an integer from 1 to 2147483647: %w", ErrInvalidInput)
	ErrInvalidPrice   = fmt.Errorf("item price must be an integer from 0 to 2147483647: %w", ErrInvalidInput)
	ErrInvalidStat    = fmt.Errorf("item stats accept health and power from -2147483647 to 2147483647: %w", ErrInvalidInput)

	// Forbidden
	ErrNotOwner = fmt.Errorf("character belongs to another user: %w", ErrForbidden)

	// Store
	ErrTxConflict = fmt.Errorf("transaction conflict: %w", ErrStoreUnavailable)
)

// Kind is the stable classification of a domain error.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindInsufficientItems Kind = "insufficient_items"
	KindForbidden         Kind = "forbidden"
	KindStoreUnavailable  Kind = "store_unavailable"
	KindUnknown           Kind = "unknown"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidInput, KindValidation},
	{ErrNotFound, KindNotFound},
	{ErrConflict, KindConflict},
	{ErrInsufficientFunds, KindInsufficientFunds},
	{ErrInsufficientItems, KindInsufficientItems},
	{ErrForbidden, KindForbidden},
	{ErrStoreUnavailable, KindStoreUnavailable},
}

// KindOf classifies err. Errors that wrap no known kind are KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// Unavailable wraps a backing-store failure so it classifies as
// KindStoreUnavailable while keeping the original cause in the chain.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
