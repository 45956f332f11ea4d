// Package shape validates untyped data (the values produced by decoding JSON
// or YAML into any) against a composed tree of validator nodes, returning
// either a type-narrowed value or an error structure that mirrors the shape
// of the input.
//
// # Nodes
//
// Four node kinds implement Node and can be nested arbitrarily:
//
//   - Leaf[T]: a single value; a TypeCheck[T] followed by RuleFunc[T] rules
//   - Group:   a string-keyed object; one child per declared field
//   - Array:   a sequence of any length; one element node for every index
//   - Tuple:   a sequence with one child per fixed position and an optional
//     rest node for the remaining elements
//
// Composites become the Parent of their children. The parent link is only a
// relation for introspection; Requirement closures use it to look at sibling
// fields (see RequiredWith and RequiredWithout).
//
// # Validation
//
// ValidateSafe records the subject, runs the type check and then the rules.
// A type failure is terminal for that node: neither its rules nor its
// children run. Rules are aggregated, never short-circuited, and composites
// always visit every child so one failing field never masks another.
//
// A missing field is passed to children as Undefined, which is distinct from
// nil. Whether Undefined is accepted is decided by the node's Requirement:
// Required reports "Value required!", Optional accepts it and skips the
// node's rules and children. nil is a regular value that fails scalar checks
// ("Value must be a string!") and gets "Object cannot be null!" from groups.
//
// Validate wraps ValidateSafe and returns a *ValidationError carrying the
// complete InvalidFields structure.
//
// # Usage
//
//	post := shape.TupleOf(shape.Required,
//		shape.Items(shape.String(shape.Required, idFormat)),
//		shape.String(shape.Required),
//		atLeastOneKeyword,
//	)
//
//	res := post.ValidateSafe([]any{"Not an ID"})
//	if !res.Valid() {
//		fmt.Println(res.Invalid.Errors)           // tuple-level messages
//		fmt.Println(res.Invalid.Index(0).Errors)  // position 0 messages
//	}
//
// # Concurrency
//
// Validation is synchronous. Every node stores its last subject, so
// validating one tree from several goroutines at the same time is a data
// race; use one tree per goroutine or serialize the calls. Replacing children
// while a validation is running is not supported either.
package shape
