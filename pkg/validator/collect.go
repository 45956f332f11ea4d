package validator

import (
	"strconv"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// CollectErrors renders the failures recorded by the last Validate. Valid
// children are omitted, so a valid tree yields an empty structure.
func CollectErrors(node Node) *shape.InvalidFields {
	out := &shape.InvalidFields{}
	if isNil(node) {
		return out
	}
	if errs := node.Errors(); len(errs) > 0 && !node.Valid() {
		out.Errors = append([]string(nil), errs...)
	}

	switch n := node.(type) {
	case *Group:
		for _, key := range n.Keys() {
			if child := n.children[key]; !child.Valid() {
				out.Set(key, CollectErrors(child))
			}
		}
	case *List:
		for i, child := range n.children {
			if child != nil && !child.Valid() {
				out.Set(strconv.Itoa(i), CollectErrors(child))
			}
		}
	}
	return out
}

// Check validates node and returns its failures as ValidationErrors, or nil
// when the tree is valid.
func Check(node Node) error {
	node.Validate()
	if node.Valid() {
		return nil
	}
	return FromInvalidFields(CollectErrors(node))
}
