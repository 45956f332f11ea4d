package shape

import (
	"fmt"
	"slices"
)

// Fields declares the children of a group by field name.
type Fields map[string]Node

// Group validates a string-keyed object by delegating each declared field to
// its child node. The validated value only contains declared fields.
type Group struct {
	nodeState
	check    TypeCheck[map[string]any]
	keys     []string
	children map[string]Node
	rules    []RuleFunc[map[string]any]
}

// NewGroup creates an object-group node and becomes the parent of every
// child. Fields are visited in sorted key order. It panics on a nil child.
func NewGroup(req Requirement, fields Fields, rules ...RuleFunc[map[string]any]) *Group {
	g := &Group{
		check:    IsObject(req),
		keys:     make([]string, 0, len(fields)),
		children: make(map[string]Node, len(fields)),
		rules:    rules,
	}
	for key, child := range fields {
		attach(g, child)
		g.children[key] = child
		g.keys = append(g.keys, key)
	}
	slices.Sort(g.keys)
	return g
}

// Keys returns the declared field names in visiting order.
func (g *Group) Keys() []string {
	return slices.Clone(g.keys)
}

// Child returns the node declared for key, or nil.
func (g *Group) Child(key string) Node {
	return g.children[key]
}

// SetChild replaces the node of a declared field. The old child is detached
// and the new one is attached to g.
func (g *Group) SetChild(key string, child Node) error {
	old, ok := g.children[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if isNilNode(child) {
		return ErrNilNode
	}
	detach(old)
	attach(g, child)
	g.children[key] = child
	return nil
}

func (g *Group) Rules() []RuleFunc[map[string]any] {
	return g.rules
}

func (g *Group) AddRule(rules ...RuleFunc[map[string]any]) {
	g.rules = append(g.rules, rules...)
}

// ValidateSafe checks the object, runs the group rules and then every child.
// All children are visited even when some of them fail.
func (g *Group) ValidateSafe(subject any) Result {
	obj, own, done := prelude(g, g.check, g.rules, subject)
	if done != nil {
		return *done
	}
	// nil passed the check because it is not required
	if obj == nil {
		if len(own) > 0 {
			return invalidResult(own)
		}
		return Result{Value: subject}
	}

	invalid := &InvalidFields{}
	value := make(map[string]any, len(g.keys))
	for _, key := range g.keys {
		res := g.children[key].ValidateSafe(Lookup(obj, key))
		if !res.Valid() {
			invalid.Set(key, res.Invalid)
			continue
		}
		if !IsUndefined(res.Value) {
			value[key] = res.Value
		}
	}
	if len(own) > 0 {
		invalid.Errors = own
	}

	if !invalid.Empty() {
		return Result{Invalid: invalid}
	}
	return Result{Value: value}
}

// Validate returns a filtered copy of the subject or a *ValidationError.
// An absent optional subject yields a nil map.
func (g *Group) Validate(subject any) (map[string]any, error) {
	res := g.ValidateSafe(subject)
	if !res.Valid() {
		return nil, NewValidationError(MessageInvalid, res.Invalid)
	}
	obj, _ := res.Value.(map[string]any)
	return obj, nil
}
