package shape

import (
	"errors"
)

// Messages produced by the engine and the built-in type checks.
const (
	MessageInvalid    = "The following fields are incorrect"
	MessageRequired   = "Value required!"
	MessageObjectNull = "Object cannot be null!"
	MessageTypeFailed = "Type validation failed!"
)

var (
	// ErrValidationFailed matches every *ValidationError via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownField is returned when replacing a group child that was not declared.
	ErrUnknownField = errors.New("unknown field")

	// ErrIndexOutOfRange is returned when replacing a tuple position that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilNode is returned when a nil node is passed as a replacement child.
	ErrNilNode = errors.New("nil node")

	// ErrNoRestValidator is returned when setting the rest node of a tuple built without one.
	ErrNoRestValidator = errors.New("tuple has no rest validator")
)

// ValidationError is returned by Validate. It carries the complete error
// structure of the call so every field error can be rendered at once.
type ValidationError struct {
	Message string
	Invalid *InvalidFields
}

func NewValidationError(message string, invalid *InvalidFields) *ValidationError {
	if invalid == nil {
		invalid = &InvalidFields{}
	}
	return &ValidationError{Message: message, Invalid: invalid}
}

func (e *ValidationError) Error() string {
	if e.Invalid.Empty() {
		return e.Message
	}
	return e.Message + ": " + e.Invalid.String()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractValidationError returns the *ValidationError wrapped in err, if any.
func ExtractValidationError(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}
