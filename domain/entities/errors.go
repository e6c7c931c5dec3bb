package entities

import "errors"

// Validation and usage errors returned by the lotto domain.
// Callers match them with errors.Is; the wrapped message names the offending value.
var (
	ErrOutOfRange    = errors.New("lotto number must be between 1 and 45")
	ErrWrongSize     = errors.New("a lotto ticket must have exactly 6 numbers")
	ErrDuplicate     = errors.New("lotto numbers and bonus number must not repeat")
	ErrNullInput     = errors.New("winning numbers are required")
	ErrIllegalState  = errors.New("operation not allowed in current game state")
	ErrInvalidAmount = errors.New("invalid purchase amount")
)
