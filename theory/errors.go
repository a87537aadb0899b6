package theory

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrNoSpelling means an addition landed on a letter that has no
	// registered spelling for the target class (more than two accidentals).
	ErrNoSpelling = errors.New("no registered spelling")

	// ErrNoQuality means no interval quality has the requested width at
	// the requested diatonic number.
	ErrNoQuality = errors.New("no interval quality matches")
)

// ValidationError describes a malformed constructor argument.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field string, value interface{}, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
