package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// OneOf accepts only the listed options.
func OneOf[T comparable](options ...T) shape.RuleFunc[T] {
	return New(func(v T) bool {
		return slices.Contains(options, v)
	}, fmt.Sprintf("Value must be one of %s!", join(options)))
}

// NoneOf rejects the listed options.
func NoneOf[T comparable](options ...T) shape.RuleFunc[T] {
	return New(func(v T) bool {
		return !slices.Contains(options, v)
	}, fmt.Sprintf("Value cannot be one of %s!", join(options)))
}

// OneOfFold is OneOf with case-insensitive comparison.
func OneOfFold(options ...string) shape.RuleFunc[string] {
	return New(func(v string) bool {
		return slices.ContainsFunc(options, func(o string) bool {
			return strings.EqualFold(o, v)
		})
	}, fmt.Sprintf("Value must be one of %s!", join(options)))
}

func join[T any](options []T) string {
	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = fmt.Sprint(o)
	}
	return strings.Join(parts, ", ")
}
