package shape

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the absence sentinel. A missing object key or a tuple position
// past the end of the subject is passed to child nodes as Undefined, which is
// distinct from nil (null).
var Undefined any = undefined{}

// IsUndefined reports whether v is the absence sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Lookup returns obj[key], or Undefined when the key is not present.
func Lookup(obj map[string]any, key string) any {
	if v, ok := obj[key]; ok {
		return v
	}
	return Undefined
}

// At returns items[i], or Undefined when i is out of bounds.
func At(items []any, i int) any {
	if i < 0 || i >= len(items) {
		return Undefined
	}
	return items[i]
}
