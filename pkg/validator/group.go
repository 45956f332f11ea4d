package validator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// Group nests validators by key.
type Group struct {
	base
	children map[string]Node
}

// NewGroup creates a Group and becomes the parent of every child. It panics
// on a nil child.
func NewGroup(children map[string]Node, funcs ...Func) *Group {
	g := &Group{base: base{funcs: funcs}, children: make(map[string]Node, len(children))}
	for key, child := range children {
		if isNil(child) {
			panic(fmt.Sprintf("validator: nil child %q", key))
		}
		g.children[key] = child
		adopt(g, child)
	}
	return g
}

// Children returns a copy of the key to validator map.
func (g *Group) Children() map[string]Node {
	return maps.Clone(g.children)
}

// Keys returns the declared keys in sorted order.
func (g *Group) Keys() []string {
	return slices.Sorted(maps.Keys(g.children))
}

// Value assembles the children values into a map.
func (g *Group) Value() any {
	out := make(map[string]any, len(g.children))
	for key, child := range g.children {
		out[key] = child.Value()
	}
	return out
}

// SetValue distributes an object to the children. Values that are not
// objects are ignored, and so are null or missing keys.
func (g *Group) SetValue(value any) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range g.Keys() {
		v, present := obj[key]
		if !present || v == nil || shape.IsUndefined(v) {
			continue
		}
		if err := g.children[key].SetValue(v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// PatchValue sets the value of a single child.
func (g *Group) PatchValue(key string, value any) error {
	child, ok := g.children[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return child.SetValue(value)
}

// GetValue returns the value of a child, or nil for an unknown key.
func (g *Group) GetValue(key string) any {
	if child, ok := g.children[key]; ok {
		return child.Value()
	}
	return nil
}

// GetValidator returns a child, or nil for an unknown key.
func (g *Group) GetValidator(key string) Node {
	return g.children[key]
}

// SetValidator installs child under key, declaring the key if needed. The
// replaced validator is detached.
func (g *Group) SetValidator(key string, child Node) error {
	if isNil(child) {
		return ErrNilValidator
	}
	orphan(g.children[key])
	g.children[key] = child
	adopt(g, child)
	return nil
}

// Validate runs the group's own functions and then every child's.
func (g *Group) Validate() {
	g.run(g)
	for _, key := range g.Keys() {
		g.children[key].Validate()
	}
}

func (g *Group) Valid() bool {
	if len(g.errors) > 0 {
		return false
	}
	for _, child := range g.children {
		if !child.Valid() {
			return false
		}
	}
	return true
}
