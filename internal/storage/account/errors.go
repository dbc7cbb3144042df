package account

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidAmount     = errors.New("amount must not be negative")
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrInvalidID      = errors.New("account id must be positive")
	ErrDuplicateID    = errors.New("duplicate account id")
	ErrMalformedLine  = errors.New("malformed account line")
	ErrInvalidBalance = errors.New("invalid balance")

	ErrInvalidHolderName = errors.New("holder name must not be empty")
	ErrInvalidCredential = errors.New("credential must not start with whitespace or contain line breaks")
)

// LineError describes a persisted row that could not be loaded.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
