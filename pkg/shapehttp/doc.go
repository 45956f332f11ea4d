// Package shapehttp validates HTTP input with shape nodes.
//
// Middleware binds the request into the untyped value model with a
// binder.Func, validates it with a tree built by the given factory and
// either stores the validated value in the request context or answers with
// a JSON error:
//
//	signup := func() shape.Node {
//	    return shape.Object(shape.Required, shape.Fields{
//	        "email":    shape.String(shape.Required, rules.Email()),
//	        "password": shape.String(shape.Required, rules.MinLen(12)),
//	    })
//	}
//
//	r := chi.NewRouter()
//	r.With(shapehttp.Middleware(signup)).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//	    input, _ := shapehttp.ObjectFromContext(r.Context())
//	    // ...
//	})
//
// A validation failure is answered with 422 and a body such as
//
//	{"error": {
//	    "code": "validation_failed",
//	    "message": "The following fields are incorrect",
//	    "details": {"email": ["Value must be a valid email address!"]},
//	    "fields": {"email": {"_errors": ["Value must be a valid email address!"]}}
//	}}
//
// Binding failures use 400, 413 or 415 with the codes "bad_request",
// "payload_too_large" and "unsupported_media_type".
//
// Trees are pooled, so the factory must return a fresh tree on every call.
package shapehttp
