package shape

import (
	"fmt"
	"strconv"
)

// Tuple validates a sequence with one node per fixed position and an
// optional rest node applied to every element past the fixed positions.
// Without a rest node, extra elements are ignored.
type Tuple struct {
	nodeState
	check     TypeCheck[[]any]
	positions []Node
	rest      Node
	rules     []RuleFunc[[]any]
}

// NewTuple creates a tuple node. rest may be nil. It panics on a nil
// positional node.
func NewTuple(req Requirement, positions []Node, rest Node, rules ...RuleFunc[[]any]) *Tuple {
	t := &Tuple{
		check:     IsArray(req),
		positions: make([]Node, len(positions)),
		rules:     rules,
	}
	for i, child := range positions {
		attach(t, child)
		t.positions[i] = child
	}
	if !isNilNode(rest) {
		attach(t, rest)
		t.rest = rest
	}
	return t
}

// Len returns the number of fixed positions.
func (t *Tuple) Len() int {
	return len(t.positions)
}

// Position returns the node of the fixed position i, or nil.
func (t *Tuple) Position(i int) Node {
	if i < 0 || i >= len(t.positions) {
		return nil
	}
	return t.positions[i]
}

// SetPosition replaces the node of an existing fixed position.
func (t *Tuple) SetPosition(i int, child Node) error {
	if i < 0 || i >= len(t.positions) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(t.positions))
	}
	if isNilNode(child) {
		return ErrNilNode
	}
	detach(t.positions[i])
	attach(t, child)
	t.positions[i] = child
	return nil
}

// Rest returns the rest node, or nil when the tuple has none.
func (t *Tuple) Rest() Node {
	return t.rest
}

// SetRest replaces the rest node. A tuple built without a rest node keeps
// its fixed arity and returns ErrNoRestValidator.
func (t *Tuple) SetRest(rest Node) error {
	if t.rest == nil {
		return ErrNoRestValidator
	}
	if isNilNode(rest) {
		return ErrNilNode
	}
	detach(t.rest)
	attach(t, rest)
	t.rest = rest
	return nil
}

func (t *Tuple) Rules() []RuleFunc[[]any] {
	return t.rules
}

func (t *Tuple) AddRule(rules ...RuleFunc[[]any]) {
	t.rules = append(t.rules, rules...)
}

// ValidateSafe checks the sequence, runs the tuple rules, then validates the
// fixed positions and, if configured, the rest elements by absolute index.
func (t *Tuple) ValidateSafe(subject any) Result {
	items, own, done := prelude(t, t.check, t.rules, subject)
	if done != nil {
		return *done
	}

	size := min(len(items), len(t.positions))
	if t.rest != nil {
		size = max(len(items), size)
	}

	invalid := &InvalidFields{}
	value := make([]any, size)
	for i, child := range t.positions {
		res := child.ValidateSafe(At(items, i))
		if i < size {
			collect(invalid, value, i, res)
		} else if !res.Valid() {
			invalid.Set(strconv.Itoa(i), res.Invalid)
		}
	}
	if t.rest != nil {
		for i := len(t.positions); i < len(items); i++ {
			collect(invalid, value, i, t.rest.ValidateSafe(items[i]))
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

// Validate returns the validated elements or a *ValidationError.
func (t *Tuple) Validate(subject any) ([]any, error) {
	res := t.ValidateSafe(subject)
	if !res.Valid() {
		return nil, NewValidationError(MessageInvalid, res.Invalid)
	}
	items, _ := res.Value.([]any)
	return items, nil
}
