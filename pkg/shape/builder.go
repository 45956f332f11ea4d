package shape

import "math/big"

// String is shorthand for NewLeaf(IsString(req), rules...).
func String(req Requirement, rules ...RuleFunc[string]) *Leaf[string] {
	return NewLeaf(IsString(req), rules...)
}

// Number is shorthand for NewLeaf(IsNumber(req), rules...).
func Number(req Requirement, rules ...RuleFunc[float64]) *Leaf[float64] {
	return NewLeaf(IsNumber(req), rules...)
}

// Int is shorthand for NewLeaf(IsInt(req), rules...).
func Int(req Requirement, rules ...RuleFunc[int64]) *Leaf[int64] {
	return NewLeaf(IsInt(req), rules...)
}

// Boolean is shorthand for NewLeaf(IsBoolean(req), rules...).
func Boolean(req Requirement, rules ...RuleFunc[bool]) *Leaf[bool] {
	return NewLeaf(IsBoolean(req), rules...)
}

// BigInt is shorthand for NewLeaf(IsBigInt(req), rules...).
func BigInt(req Requirement, rules ...RuleFunc[*big.Int]) *Leaf[*big.Int] {
	return NewLeaf(IsBigInt(req), rules...)
}

// The composite builders take ready-made nodes. A check paired with its rules
// becomes a node through NewLeaf, which works for any TypeCheck including
// ones built with IsType or Check.

// Object is shorthand for NewGroup.
func Object(req Requirement, fields Fields, rules ...RuleFunc[map[string]any]) *Group {
	return NewGroup(req, fields, rules...)
}

// List is shorthand for NewArray.
func List(req Requirement, element Node, rules ...RuleFunc[[]any]) *Array {
	return NewArray(req, element, rules...)
}

// TupleOf is shorthand for NewTuple. rest may be nil.
func TupleOf(req Requirement, positions []Node, rest Node, rules ...RuleFunc[[]any]) *Tuple {
	return NewTuple(req, positions, rest, rules...)
}

// Items collects nodes for TupleOf.
func Items(nodes ...Node) []Node {
	return nodes
}
