package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrListTooLong is returned when a List receives more values than it has validators.
	ErrListTooLong = errors.New("value list is longer than the validator list")

	// ErrNoValidator is returned when a value targets a list slot without a validator.
	ErrNoValidator = errors.New("no validator at index")

	// ErrUnknownField is returned when a key is not declared on a Group.
	ErrUnknownField = errors.New("unknown field")

	// ErrNilValidator is returned when a nil validator is installed as a child.
	ErrNilValidator = errors.New("nil validator")
)
