package shape

import (
	"fmt"
	"reflect"
)

// Node is one validator in a composed tree. It is implemented by *Leaf[T],
// *Group, *Array and *Tuple only; any of them can be the child of any
// composite.
type Node interface {
	// ValidateSafe validates subject and reports failures in the Result
	// instead of returning an error.
	ValidateSafe(subject any) Result
	// LastSubject returns the most recent subject passed to ValidateSafe.
	LastSubject() any
	// Parent returns the enclosing composite, or nil for a detached node.
	Parent() Node

	state() *nodeState
}

// nodeState is shared by every node kind. The parent link is a relation,
// not ownership: it is only read by callers and Requirement closures.
type nodeState struct {
	lastSubject any
	parent      Node
}

func (s *nodeState) LastSubject() any { return s.lastSubject }

func (s *nodeState) Parent() Node { return s.parent }

func (s *nodeState) state() *nodeState { return s }

// Messages is what a rule function reports. A nil or empty slice means the
// value satisfied the rule; empty strings are ignored.
type Messages []string

// RuleFunc is a business rule evaluated after the type check succeeds.
// It receives the narrowed value and the node running it.
type RuleFunc[T any] func(value T, node Node) Messages

// Validate runs node.ValidateSafe and turns an invalid result into a
// *ValidationError.
func Validate(node Node, subject any) (any, error) {
	res := node.ValidateSafe(subject)
	if !res.Valid() {
		return nil, NewValidationError(MessageInvalid, res.Invalid)
	}
	return res.Value, nil
}

func attach(parent, child Node) {
	if isNilNode(child) {
		panic(fmt.Sprintf("shape: nil child attached to %s", typeName(parent)))
	}
	child.state().parent = parent
}

func detach(child Node) {
	if !isNilNode(child) {
		child.state().parent = nil
	}
}

// isNilNode also catches typed nil pointers stored in the interface.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// prelude records the subject, runs the type check and, when the subject was
// narrowed, the rule functions. A non-nil Result means the node is done.
func prelude[T any](node Node, check TypeCheck[T], rules []RuleFunc[T], subject any) (T, []string, *Result) {
	node.state().lastSubject = subject

	out := check(subject, node)
	if reason, failed := out.Reason(); failed {
		res := invalidResult([]string{reason})
		return out.value, nil, &res
	}
	if out.IsAbsent() {
		res := Result{Value: subject}
		return out.value, nil, &res
	}

	return out.value, runRules(rules, out.value, node), nil
}

func runRules[T any](rules []RuleFunc[T], value T, node Node) []string {
	var messages []string
	for _, rule := range rules {
		for _, msg := range rule(value, node) {
			if msg != "" {
				messages = append(messages, msg)
			}
		}
	}
	return messages
}
