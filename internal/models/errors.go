package models

import (
	"errors"
	"fmt"
)

// Recoverable domain errors. Anything else coming out of the core (store
// unavailable, lookup transport failure) is propagated unchanged.
var (
	ErrProfileMissing   = errors.New("profile does not exist")
	ErrNoSuchDay        = errors.New("day has not been started")
	ErrDayAlreadyOpen   = errors.New("day has already been started")
	ErrCityNotFound     = errors.New("city not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ValidationError reports malformed user input (bad number, negative amount).
// Recovered locally by re-prompting, never fatal.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
