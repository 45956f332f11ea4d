package shape

import "strconv"

// Array validates every element of a runtime-length sequence with a single
// element node.
type Array struct {
	nodeState
	check   TypeCheck[[]any]
	element Node
	rules   []RuleFunc[[]any]
}

// NewArray creates an array node and becomes the parent of element.
// It panics when element is nil.
func NewArray(req Requirement, element Node, rules ...RuleFunc[[]any]) *Array {
	a := &Array{check: IsArray(req), rules: rules}
	attach(a, element)
	a.element = element
	return a
}

// Element returns the node applied to every element.
func (a *Array) Element() Node {
	return a.element
}

// SetElement replaces the element node, detaching the previous one.
func (a *Array) SetElement(element Node) error {
	if isNilNode(element) {
		return ErrNilNode
	}
	detach(a.element)
	attach(a, element)
	a.element = element
	return nil
}

func (a *Array) Rules() []RuleFunc[[]any] {
	return a.rules
}

func (a *Array) AddRule(rules ...RuleFunc[[]any]) {
	a.rules = append(a.rules, rules...)
}

// ValidateSafe checks the sequence, runs the array rules and validates each
// element. Failures are keyed by index.
func (a *Array) ValidateSafe(subject any) Result {
	items, own, done := prelude(a, a.check, a.rules, subject)
	if done != nil {
		return *done
	}

	invalid := &InvalidFields{}
	value := make([]any, len(items))
	for i, item := range items {
		collect(invalid, value, i, a.element.ValidateSafe(item))
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
func (a *Array) Validate(subject any) ([]any, error) {
	res := a.ValidateSafe(subject)
	if !res.Valid() {
		return nil, NewValidationError(MessageInvalid, res.Invalid)
	}
	items, _ := res.Value.([]any)
	return items, nil
}

// collect stores one element result either in the error structure or in the
// output slice.
func collect(invalid *InvalidFields, value []any, i int, res Result) {
	if !res.Valid() {
		invalid.Set(strconv.Itoa(i), res.Invalid)
		return
	}
	if !IsUndefined(res.Value) {
		value[i] = res.Value
	}
}
