package dna

import "errors"

var (
	ErrMissingTrait      = errors.New("missing trait")
	ErrUnknownCategory   = errors.New("unknown trait category")
	ErrInvalidGeneration = errors.New("generation must be non negative")
	ErrInvalidRarity     = errors.New("rarity score must be in [0, 100]")
)

// ValidationError reports a structurally invalid DNA record.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return "invalid dna: " + e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }
