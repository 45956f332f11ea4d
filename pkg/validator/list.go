package validator

import (
	"fmt"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// List nests validators by index. A slot may be empty after SetValidator
// grows the list past a gap; empty slots are skipped by Validate and Valid.
type List struct {
	base
	children []Node
}

// NewList creates a List and becomes the parent of every child.
func NewList(children []Node, funcs ...Func) *List {
	l := &List{base: base{funcs: funcs}, children: make([]Node, len(children))}
	for i, child := range children {
		if isNil(child) {
			continue
		}
		l.children[i] = child
		adopt(l, child)
	}
	return l
}

func (l *List) Len() int { return len(l.children) }

// Value collects the children values. Empty slots yield nil.
func (l *List) Value() any {
	out := make([]any, len(l.children))
	for i, child := range l.children {
		if child != nil {
			out[i] = child.Value()
		}
	}
	return out
}

// SetValue distributes a list to the children by index. Values that are not
// []any are ignored, and so are null or undefined elements. To accept a
// longer list, add validators first.
func (l *List) SetValue(value any) error {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	if len(items) > len(l.children) {
		return fmt.Errorf("%w: %d values for %d validators", ErrListTooLong, len(items), len(l.children))
	}
	for i, child := range l.children {
		if child == nil {
			return fmt.Errorf("%w %d", ErrNoValidator, i)
		}
		v := shape.At(items, i)
		if v == nil || shape.IsUndefined(v) {
			continue
		}
		if err := child.SetValue(v); err != nil {
			return fmt.Errorf("%d: %w", i, err)
		}
	}
	return nil
}

// PatchValue sets the value of the validator at idx.
func (l *List) PatchValue(idx int, value any) error {
	child := l.GetValidator(idx)
	if child == nil {
		return fmt.Errorf("%w %d", ErrNoValidator, idx)
	}
	return child.SetValue(value)
}

// GetValue returns the value at idx, or nil when there is no validator.
func (l *List) GetValue(idx int) any {
	if child := l.GetValidator(idx); child != nil {
		return child.Value()
	}
	return nil
}

// GetValidator returns the validator at idx or nil.
func (l *List) GetValidator(idx int) Node {
	if idx < 0 || idx >= len(l.children) {
		return nil
	}
	return l.children[idx]
}

// SetValidator installs child at idx, growing the list when idx is past
// the end.
func (l *List) SetValidator(idx int, child Node) error {
	if isNil(child) {
		return ErrNilValidator
	}
	if idx < 0 {
		return fmt.Errorf("%w %d", ErrNoValidator, idx)
	}
	if idx >= len(l.children) {
		l.children = append(l.children, make([]Node, idx-len(l.children)+1)...)
	}
	orphan(l.children[idx])
	l.children[idx] = child
	adopt(l, child)
	return nil
}

// Push appends child to the list.
func (l *List) Push(child Node) error {
	return l.SetValidator(len(l.children), child)
}

func (l *List) Validate() {
	l.run(l)
	for _, child := range l.children {
		if child != nil {
			child.Validate()
		}
	}
}

func (l *List) Valid() bool {
	if len(l.errors) > 0 {
		return false
	}
	for _, child := range l.children {
		if child != nil && !child.Valid() {
			return false
		}
	}
	return true
}
