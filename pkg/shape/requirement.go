package shape

// Requirement decides whether a value is required at the moment it is
// checked. It is evaluated on every call, so it may depend on the value or on
// other nodes reachable through node.Parent().
type Requirement func(value any, node Node) bool

// Required always requires the value.
func Required(any, Node) bool { return true }

// Optional never requires the value; an absent subject is vacuously valid.
func Optional(any, Node) bool { return false }

// resolve treats a nil Requirement as Required.
func (r Requirement) resolve(value any, node Node) bool {
	if r == nil {
		return true
	}
	return r(value, node)
}

// RequiredWithout requires the value when the sibling field is absent or nil
// in the enclosing group's current subject.
func RequiredWithout(sibling string) Requirement {
	return func(_ any, node Node) bool {
		return !siblingPresent(node, sibling)
	}
}

// RequiredWith requires the value when the sibling field is present and not
// nil in the enclosing group's current subject.
func RequiredWith(sibling string) Requirement {
	return func(_ any, node Node) bool {
		return siblingPresent(node, sibling)
	}
}

func siblingPresent(node Node, sibling string) bool {
	if node == nil || node.Parent() == nil {
		return false
	}
	obj, ok := toObject(node.Parent().LastSubject())
	if !ok {
		return false
	}
	v := Lookup(obj, sibling)
	return !IsUndefined(v) && v != nil
}
