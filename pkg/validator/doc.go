// Package validator is the stateful predecessor of package shape.
//
// A Validator holds a value together with the functions that judge it.
// Calling Validate runs those functions and stores their messages, after
// which Valid and Errors report the outcome. Group and List nest validators
// by key and by index; each child knows its parent, so a function can look
// at sibling values through Parent.
//
//	login := validator.NewGroup(map[string]validator.Node{
//	    "email":    validator.New("", validator.IsString(validator.Required)),
//	    "remember": validator.New(nil, validator.IsBoolean(validator.Optional)),
//	})
//	_ = login.SetValue(map[string]any{"email": "ada@example.com"})
//	if err := validator.Check(login); err != nil {
//	    errs := validator.ExtractValidationErrors(err)
//	    _ = errs.Get("email")
//	}
//
// CollectErrors walks a tree after Validate and renders the failures as a
// *shape.InvalidFields, the structure used by package shape. New code should
// prefer shape nodes, which are stateless between calls.
//
// Validators are not safe for concurrent use.
package validator
