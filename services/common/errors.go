package common

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the ledger and bet state machine. Callers match
// with errors.Is; wrapped messages carry the detail.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("bet not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAlreadyExists       = errors.New("already exists")
	ErrStoreFailure        = errors.New("store failure")
)

// StoreFailure wraps an unexpected persistence error. The transition that hit
// it has been rolled back in full, so the caller may retry the whole
// operation.
func StoreFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreFailure, err)
}

// IsDomainError reports whether err is one of the caller-facing kinds, as
// opposed to an unexpected persistence failure.
func IsDomainError(err error) bool {
	for _, kind := range []error{
		ErrValidation,
		ErrNotFound,
		ErrWalletNotFound,
		ErrInvalidTransition,
		ErrInsufficientCredits,
		ErrAlreadyExists,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
