package shape

// Result is the outcome of ValidateSafe: either Value (Invalid is nil) or a
// non-empty Invalid structure.
type Result struct {
	Value   any
	Invalid *InvalidFields
}

// Valid reports whether the subject passed validation.
func (r Result) Valid() bool {
	return r.Invalid == nil
}

func invalidResult(messages []string) Result {
	return Result{Invalid: &InvalidFields{Errors: messages}}
}
