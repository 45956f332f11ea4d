package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// ValidationError is a single failure. Field is the dotted path of the
// failing node; it is empty for the root.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is a flat list of failures that satisfies error.
type ValidationErrors []ValidationError

// FromInvalidFields flattens a failure tree in path order.
func FromInvalidFields(f *shape.InvalidFields) ValidationErrors {
	flat := f.Flatten()
	var out ValidationErrors
	for _, path := range slices.Sorted(maps.Keys(flat)) {
		for _, msg := range flat[path] {
			out = append(out, ValidationError{Field: path, Message: msg})
		}
	}
	return out
}

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		if err.Field == "" {
			parts = append(parts, err.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(err ValidationError) bool {
		return err.Field == field
	})
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct paths in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err. A
// *shape.ValidationError is flattened as well.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}
	if shapeErr := shape.ExtractValidationError(err); shapeErr != nil {
		return FromInvalidFields(shapeErr.Invalid)
	}

	return nil
}

func IsValidationError(err error) bool {
	var validationErr ValidationErrors
	return errors.As(err, &validationErr) || shape.IsValidationError(err)
}
