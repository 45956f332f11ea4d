package rules

import "github.com/dmitrymomot/validation/pkg/shape"

// Numeric is the constraint accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// New builds a rule that reports message whenever check returns false.
func New[T any](check func(value T) bool, message string) shape.RuleFunc[T] {
	return func(value T, _ shape.Node) shape.Messages {
		if check(value) {
			return nil
		}
		return shape.Messages{message}
	}
}
