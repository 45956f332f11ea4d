package validator

import "reflect"

// Node is implemented by *Validator, *Group and *List.
type Node interface {
	// Value returns the held value. Composites assemble it from their children.
	Value() any
	// SetValue replaces the held value.
	SetValue(value any) error
	// Validate runs the validation functions and refreshes Errors and Valid.
	Validate()
	// Valid reports whether the last Validate produced no messages anywhere
	// in the subtree.
	Valid() bool
	// Errors returns the messages of this node's own functions.
	Errors() []string
	// Parent returns the enclosing Group or List.
	Parent() Node

	core() *base
}

// Func judges a node and returns zero or more messages.
type Func func(node Node) []string

type base struct {
	funcs  []Func
	errors []string
	parent Node
}

func (b *base) Errors() []string { return b.errors }

func (b *base) Parent() Node { return b.parent }

func (b *base) core() *base { return b }

// AddFunc appends validation functions. They take effect on the next Validate.
func (b *base) AddFunc(funcs ...Func) {
	b.funcs = append(b.funcs, funcs...)
}

// run evaluates funcs against node, keeping every non-empty message.
func (b *base) run(node Node) {
	b.errors = nil
	for _, fn := range b.funcs {
		for _, msg := range fn(node) {
			if msg != "" {
				b.errors = append(b.errors, msg)
			}
		}
	}
}

// Validator holds a single value.
type Validator struct {
	base
	value any
}

// New creates a Validator holding value.
func New(value any, funcs ...Func) *Validator {
	return &Validator{base: base{funcs: funcs}, value: value}
}

func (v *Validator) Value() any { return v.value }

func (v *Validator) SetValue(value any) error {
	v.value = value
	return nil
}

func (v *Validator) Validate() { v.run(v) }

func (v *Validator) Valid() bool { return len(v.errors) == 0 }

// Invalid is the negation of Valid.
func (v *Validator) Invalid() bool { return !v.Valid() }

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func adopt(parent, child Node) {
	child.core().parent = parent
}

func orphan(child Node) {
	if !isNil(child) {
		child.core().parent = nil
	}
}
