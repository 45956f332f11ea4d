package binder

import "errors"

// Binding errors. The body and media type errors decide the HTTP status in
// shapehttp; the rest map to 400.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrRequestTooLarge      = errors.New("request body too large")

	ErrFailedToParseJSON  = errors.New("failed to decode JSON input")
	ErrFailedToParseYAML  = errors.New("failed to decode YAML input")
	ErrFailedToParseForm  = errors.New("failed to decode form data")
	ErrFailedToParseQuery = errors.New("failed to decode query string")
	ErrFailedToParsePath  = errors.New("failed to read path parameters")
)
