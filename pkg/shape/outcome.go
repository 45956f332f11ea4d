package shape

type outcomeKind uint8

const (
	outcomeNarrowed outcomeKind = iota
	outcomeAbsent
	outcomeFailed
)

// Outcome is the result of a type check. It is one of three states:
// the subject was narrowed to T, the subject is absent and not required,
// or the check failed with a reason.
type Outcome[T any] struct {
	kind   outcomeKind
	value  T
	reason string
}

// Narrowed reports type membership and carries the narrowed value.
func Narrowed[T any](v T) Outcome[T] {
	return Outcome[T]{kind: outcomeNarrowed, value: v}
}

// Absent reports an absent subject that is not required. Nodes treat it as
// vacuous success and skip their rules and children.
func Absent[T any]() Outcome[T] {
	return Outcome[T]{kind: outcomeAbsent}
}

// Failed reports a type failure. An empty reason is replaced by
// MessageTypeFailed.
func Failed[T any](reason string) Outcome[T] {
	return Outcome[T]{kind: outcomeFailed, reason: reason}
}

// Value returns the narrowed value and whether the outcome is Narrowed.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.kind == outcomeNarrowed
}

func (o Outcome[T]) IsAbsent() bool {
	return o.kind == outcomeAbsent
}

// Reason returns the failure reason and whether the outcome is Failed.
func (o Outcome[T]) Reason() (string, bool) {
	if o.kind != outcomeFailed {
		return "", false
	}
	if o.reason == "" {
		return MessageTypeFailed, true
	}
	return o.reason, true
}

// TypeCheck decides type membership of a subject for the given node.
type TypeCheck[T any] func(value any, node Node) Outcome[T]

// Check adapts a plain assertion into a TypeCheck. A false result becomes a
// failure with the default message; the subject is never treated as absent.
func Check[T any](assert func(value any, node Node) (T, bool)) TypeCheck[T] {
	return func(value any, node Node) Outcome[T] {
		if v, ok := assert(value, node); ok {
			return Narrowed(v)
		}
		return Failed[T]("")
	}
}
