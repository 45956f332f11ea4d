package shape

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrorsKey is the reserved key holding a node's own messages in the JSON
// form of InvalidFields.
const ErrorsKey = "_errors"

// InvalidFields mirrors the shape of a validated value. Errors holds the
// messages produced by the node itself; Children holds the failures of child
// nodes keyed by field name or decimal index. A missing key means that
// position was valid.
type InvalidFields struct {
	Errors   []string
	Children map[string]*InvalidFields
}

// Empty reports whether f holds no own messages and no children.
func (f *InvalidFields) Empty() bool {
	return f == nil || (len(f.Errors) == 0 && len(f.Children) == 0)
}

// Field returns the failures recorded under name, or nil.
func (f *InvalidFields) Field(name string) *InvalidFields {
	if f == nil {
		return nil
	}
	return f.Children[name]
}

// Index returns the failures recorded for the element at position i, or nil.
func (f *InvalidFields) Index(i int) *InvalidFields {
	return f.Field(strconv.Itoa(i))
}

func (f *InvalidFields) Has(key string) bool {
	return f.Field(key) != nil
}

// Keys returns the child keys in sorted order; numeric keys sort by value.
func (f *InvalidFields) Keys() []string {
	if f == nil {
		return nil
	}
	keys := make([]string, 0, len(f.Children))
	for key := range f.Children {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}

// Set records child under key, replacing any previous entry.
func (f *InvalidFields) Set(key string, child *InvalidFields) {
	if f.Children == nil {
		f.Children = make(map[string]*InvalidFields)
	}
	f.Children[key] = child
}

// Flatten maps dotted paths to messages. The node's own messages are stored
// under the empty path.
func (f *InvalidFields) Flatten() map[string][]string {
	out := make(map[string][]string)
	f.flatten("", out)
	return out
}

func (f *InvalidFields) flatten(prefix string, out map[string][]string) {
	if f == nil {
		return
	}
	if len(f.Errors) > 0 {
		out[prefix] = append(out[prefix], f.Errors...)
	}
	for key, child := range f.Children {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		child.flatten(path, out)
	}
}

// String renders the structure as "path: message" pairs in path order.
func (f *InvalidFields) String() string {
	flat := f.Flatten()
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		for _, msg := range flat[path] {
			if path == "" {
				parts = append(parts, msg)
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", path, msg))
		}
	}
	return strings.Join(parts, "; ")
}

func (f *InvalidFields) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	out := make(map[string]any, len(f.Children)+1)
	if len(f.Errors) > 0 {
		out[ErrorsKey] = f.Errors
	}
	for key, child := range f.Children {
		out[key] = child
	}
	return json.Marshal(out)
}

func (f *InvalidFields) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = InvalidFields{}
	for key, value := range raw {
		if key == ErrorsKey {
			if err := json.Unmarshal(value, &f.Errors); err != nil {
				return fmt.Errorf("decode %s: %w", ErrorsKey, err)
			}
			continue
		}
		child := &InvalidFields{}
		if err := json.Unmarshal(value, child); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		f.Set(key, child)
	}
	return nil
}

func compareKeys(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		return ai - bi
	}
	return strings.Compare(a, b)
}
