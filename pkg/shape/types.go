package shape

import (
	"math"
	"math/big"
	"reflect"
	"strings"
	"unicode"
)

// IsType builds a type check factory for a named type. The returned factory
// applies the shared required policy: an Undefined subject fails with
// MessageRequired when required and is Absent otherwise; any other subject is
// narrowed by assert or fails with "Value must be a/an <typeName>!".
func IsType[T any](typeName string, assert func(value any) (T, bool)) func(req Requirement) TypeCheck[T] {
	mismatch := "Value must be " + withArticle(typeName) + "!"
	return func(req Requirement) TypeCheck[T] {
		return func(value any, node Node) Outcome[T] {
			required := req.resolve(value, node)
			if IsUndefined(value) {
				if required {
					return Failed[T](MessageRequired)
				}
				return Absent[T]()
			}
			if v, ok := assert(value); ok {
				return Narrowed(v)
			}
			return Failed[T](mismatch)
		}
	}
}

// IsString checks for a Go string.
func IsString(req Requirement) TypeCheck[string] {
	return IsType("string", toString)(req)
}

// IsNumber checks for any Go numeric kind and narrows it to float64.
func IsNumber(req Requirement) TypeCheck[float64] {
	return IsType("number", toFloat)(req)
}

// IsInt checks for an integer or an integral float within the int64 range.
func IsInt(req Requirement) TypeCheck[int64] {
	return IsType("integer", toInt)(req)
}

func IsBoolean(req Requirement) TypeCheck[bool] {
	return IsType("boolean", toBool)(req)
}

// IsBigInt checks for a non-nil *big.Int (or a big.Int value).
func IsBigInt(req Requirement) TypeCheck[*big.Int] {
	return IsType("bigint", toBigInt)(req)
}

// IsArray checks for a slice or array. Slices other than []any are copied
// into a fresh []any.
func IsArray(req Requirement) TypeCheck[[]any] {
	return IsType("array", toArray)(req)
}

// IsObject checks for a string-keyed map. Unlike the scalar checks, nil gets
// its own failure: MessageObjectNull when required. Typed nil maps count as
// nil. A nil subject that is not required is narrowed to a nil map, which
// groups accept without visiting their children.
func IsObject(req Requirement) TypeCheck[map[string]any] {
	base := IsType("object", toObject)(req)
	return func(value any, node Node) Outcome[map[string]any] {
		if !isNullObject(value) {
			return base(value, node)
		}
		if req.resolve(value, node) {
			return Failed[map[string]any](MessageObjectNull)
		}
		return Narrowed[map[string]any](nil)
	}
}

func isNullObject(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.IsNil()
}

func withArticle(noun string) string {
	first, _ := firstRune(noun)
	switch unicode.ToLower(first) {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + noun
	default:
		return "a " + noun
	}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func toString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func toBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toBigInt(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		return n, n != nil
	case big.Int:
		return new(big.Int).Set(&n), true
	}
	return nil, false
}

func toArray(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	}
	return nil, false
}

func toObject(v any) (map[string]any, bool) {
	if obj, ok := v.(map[string]any); ok {
		return obj, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	obj := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		obj[iter.Key().String()] = iter.Value().Interface()
	}
	return obj, true
}

// typeName is used in panics for malformed trees.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return strings.TrimPrefix(reflect.TypeOf(v).String(), "*")
}
