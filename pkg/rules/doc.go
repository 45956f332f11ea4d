// Package rules provides ready-made rule functions for shape nodes.
//
// Every helper returns a shape.RuleFunc that reports a single message when
// the narrowed value breaks the rule and nothing otherwise, so rules can be
// stacked on a node and all of their failures are aggregated:
//
//	username := shape.String(shape.Required,
//	    rules.MinLen(3),
//	    rules.MaxLen(32),
//	    rules.Slug(),
//	)
//
//	tags := shape.List(shape.Optional, shape.String(shape.Required),
//	    rules.MaxItems(10),
//	    rules.UniqueItems(),
//	)
//
// Rules only run after the node's type check passed, so they never see
// absent or mistyped values.
//
// Source files group rules by family: string_rules.go (length and content),
// numeric_rules.go, collection_rules.go (arrays, tuples and groups),
// format_rules.go (email, URL, slug, IP), uuid_rules.go and choice_rules.go.
// String lengths are counted in runes after NFC normalisation so composed and
// decomposed forms of the same text have the same length.
package rules
