// Package binder decodes HTTP request input into the untyped value model
// validated by package shape: map[string]any for objects, []any for arrays,
// string, float64 and bool for scalars, and nil for null.
//
// Each binder is a Func. JSON and YAML decode the request body; Form, Query
// and Path turn string parameters into an object where a single value is a
// string and a repeated one is an array of strings. Merge combines several
// sources into one object so that a route can validate path, query and body
// fields with a single shape.Group.
//
//	r := chi.NewRouter()
//	r.Post("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//	    input, err := binder.Merge(binder.ChiPath(), binder.JSON())(r)
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    user, err := userShape.Validate(input)
//	    // ...
//	})
//
// # Errors
//
// Binding failures wrap one of the package sentinel errors, so callers can
// tell a malformed request from a validation failure with errors.Is:
//
//   - ErrMissingContentType: the Content-Type header is absent
//   - ErrUnsupportedMediaType: the Content-Type is not accepted by the binder
//   - ErrRequestTooLarge: the body exceeds the size limit
//   - ErrFailedToParseJSON, ErrFailedToParseYAML, ErrFailedToParseForm,
//     ErrFailedToParseQuery, ErrFailedToParsePath: decoding failed
package binder
