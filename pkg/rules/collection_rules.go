package rules

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// MinItems applies to array and tuple nodes.
func MinItems(min int) shape.RuleFunc[[]any] {
	return New(func(items []any) bool {
		return len(items) >= min
	}, fmt.Sprintf("Value must contain at least %d items!", min))
}

func MaxItems(max int) shape.RuleFunc[[]any] {
	return New(func(items []any) bool {
		return len(items) <= max
	}, fmt.Sprintf("Value must contain at most %d items!", max))
}

func ItemsLen(exact int) shape.RuleFunc[[]any] {
	return New(func(items []any) bool {
		return len(items) == exact
	}, fmt.Sprintf("Value must contain exactly %d items!", exact))
}

// NotEmpty rejects empty arrays.
func NotEmpty() shape.RuleFunc[[]any] {
	return New(func(items []any) bool {
		return len(items) > 0
	}, "Value cannot be empty!")
}

// UniqueItems rejects arrays holding deeply equal elements.
func UniqueItems() shape.RuleFunc[[]any] {
	return New(func(items []any) bool {
		for i := range items {
			for j := i + 1; j < len(items); j++ {
				if reflect.DeepEqual(items[i], items[j]) {
					return false
				}
			}
		}
		return true
	}, "Value must not contain duplicate items!")
}

// MinKeys applies to group nodes and counts every key of the subject,
// declared or not. A nil object has zero keys.
func MinKeys(min int) shape.RuleFunc[map[string]any] {
	return New(func(obj map[string]any) bool {
		return len(obj) >= min
	}, fmt.Sprintf("Value must contain at least %d fields!", min))
}

func MaxKeys(max int) shape.RuleFunc[map[string]any] {
	return New(func(obj map[string]any) bool {
		return len(obj) <= max
	}, fmt.Sprintf("Value must contain at most %d fields!", max))
}
