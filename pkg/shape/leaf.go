package shape

// Leaf validates a single value with a type check followed by rule functions.
type Leaf[T any] struct {
	nodeState
	check TypeCheck[T]
	rules []RuleFunc[T]
}

// NewLeaf creates a leaf node. It panics when check is nil.
func NewLeaf[T any](check TypeCheck[T], rules ...RuleFunc[T]) *Leaf[T] {
	if check == nil {
		panic("shape: leaf requires a type check")
	}
	return &Leaf[T]{check: check, rules: rules}
}

// Rules returns the rule functions in evaluation order.
func (l *Leaf[T]) Rules() []RuleFunc[T] {
	return l.rules
}

// AddRule appends rule functions, evaluated after the existing ones.
func (l *Leaf[T]) AddRule(rules ...RuleFunc[T]) {
	l.rules = append(l.rules, rules...)
}

// ValidateSafe runs the type check and, when it passes, every rule function.
// An absent subject that is not required is returned as is without running
// the rules.
func (l *Leaf[T]) ValidateSafe(subject any) Result {
	value, messages, done := prelude(l, l.check, l.rules, subject)
	if done != nil {
		return *done
	}
	if len(messages) > 0 {
		return invalidResult(messages)
	}
	return Result{Value: value}
}

// Validate returns the narrowed value or a *ValidationError. An absent
// optional subject yields the zero value of T.
func (l *Leaf[T]) Validate(subject any) (T, error) {
	var zero T
	res := l.ValidateSafe(subject)
	if !res.Valid() {
		return zero, NewValidationError(MessageInvalid, res.Invalid)
	}
	if v, ok := res.Value.(T); ok {
		return v, nil
	}
	return zero, nil
}
