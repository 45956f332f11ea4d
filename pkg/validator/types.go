package validator

import (
	"fmt"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// Predicate decides at validation time whether a value is required.
type Predicate func(node Node) bool

// Required and Optional are the constant predicates.
func Required(Node) bool { return true }

func Optional(Node) bool { return false }

// RequiredWithout makes a value required while the sibling key of the
// parent Group holds null.
func RequiredWithout(sibling string) Predicate {
	return func(node Node) bool {
		return siblingValue(node, sibling) == nil
	}
}

func siblingValue(node Node, key string) any {
	if g, ok := node.Parent().(*Group); ok {
		return g.GetValue(key)
	}
	return nil
}

// IsString checks that the held value is a string. nil and undefined count
// as missing.
func IsString(req Predicate) Func {
	return isType[string]("string", req)
}

// IsNumber accepts every Go numeric kind.
func IsNumber(req Predicate) Func {
	return func(node Node) []string {
		if msg, done := missing(node, req); done {
			return msg
		}
		switch node.Value().(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return nil
		}
		return mismatch("number")
	}
}

func IsBoolean(req Predicate) Func {
	return isType[bool]("boolean", req)
}

func isType[T any](name string, req Predicate) Func {
	return func(node Node) []string {
		if msg, done := missing(node, req); done {
			return msg
		}
		if _, ok := node.Value().(T); ok {
			return nil
		}
		return mismatch(name)
	}
}

// missing handles null and undefined values. done is false when the value
// is present and still needs a type check.
func missing(node Node, req Predicate) (msg []string, done bool) {
	v := node.Value()
	if v != nil && !shape.IsUndefined(v) {
		return nil, false
	}
	if req == nil || req(node) {
		return []string{shape.MessageRequired}, true
	}
	return nil, true
}

func mismatch(name string) []string {
	return []string{fmt.Sprintf("Value must be a %s!", name)}
}
