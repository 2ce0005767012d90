package usecase

import (
	"errors"
	"fmt"

	"theater-booking/pkg/utils"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the addressed record does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict means the write collides with an existing record
	ErrConflict = errors.New("conflict")
)

// ValidationError carries per-field messages keyed by JSON field name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// validate runs the struct tags of req and returns a *ValidationError when any fail
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// parseID treats a malformed id like an unknown one
func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return parsed, nil
}
