package rules

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/validation/pkg/shape"
)

func Min[T Numeric](min T) shape.RuleFunc[T] {
	return New(func(v T) bool {
		return v >= min
	}, fmt.Sprintf("Value must be at least %v!", min))
}

func Max[T Numeric](max T) shape.RuleFunc[T] {
	return New(func(v T) bool {
		return v <= max
	}, fmt.Sprintf("Value must be at most %v!", max))
}

// Between checks min <= value <= max.
func Between[T Numeric](min, max T) shape.RuleFunc[T] {
	return New(func(v T) bool {
		return v >= min && v <= max
	}, fmt.Sprintf("Value must be between %v and %v!", min, max))
}

func Positive[T Numeric]() shape.RuleFunc[T] {
	return New(func(v T) bool {
		return v > 0
	}, "Value must be positive!")
}

func NonZero[T Numeric]() shape.RuleFunc[T] {
	var zero T
	return New(func(v T) bool {
		return v != zero
	}, "Value cannot be zero!")
}

// MultipleOf checks that value is an integral multiple of step. A zero step
// never matches.
func MultipleOf[T Numeric](step T) shape.RuleFunc[T] {
	return New(func(v T) bool {
		if step == 0 {
			return false
		}
		q := float64(v) / float64(step)
		return q == math.Trunc(q)
	}, fmt.Sprintf("Value must be a multiple of %v!", step))
}
