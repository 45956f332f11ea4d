package binder

import (
	"fmt"
	"io"
	"maps"
	"net/http"
	"strings"
)

// DefaultMaxBodySize is the default limit for JSON and YAML bodies (1MB).
const DefaultMaxBodySize = 1 << 20 // 1 MB

// Func decodes part of a request into an untyped value.
type Func func(r *http.Request) (any, error)

// Merge runs every binder in order and merges their objects into one.
// Later binders win on duplicate keys. A binder that yields nil is skipped;
// any other non-object result is an error wrapping the sentinel of that
// binder's source.
func Merge(binders ...Func) Func {
	return func(r *http.Request) (any, error) {
		out := make(map[string]any)
		for _, bind := range binders {
			v, err := bind(r)
			if err != nil {
				return nil, err
			}
			if v == nil {
				continue
			}
			obj, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: merged input must be an object, got %T", ErrUnsupportedMediaType, v)
			}
			maps.Copy(out, obj)
		}
		return out, nil
	}
}

// mediaType returns the Content-Type without parameters, lower-cased.
func mediaType(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// checkMediaType accepts any of allowed, reporting the expected types on
// failure.
func checkMediaType(r *http.Request, allowed ...string) error {
	got := mediaType(r)
	if got == "" {
		return fmt.Errorf("%w: expected %s", ErrMissingContentType, strings.Join(allowed, " or "))
	}
	for _, a := range allowed {
		if got == a {
			return nil
		}
	}
	return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, got, strings.Join(allowed, " or "))
}

// readBody reads at most limit bytes of the body.
func readBody(r *http.Request, limit int64, parseErr error) ([]byte, error) {
	if r.Body == nil {
		return nil, fmt.Errorf("%w: empty body", parseErr)
	}
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", parseErr, err)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", parseErr, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, limit)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("%w: empty body", parseErr)
	}
	return body, nil
}

// fromValues turns string parameters into an object. Keys ending in "[]"
// always produce an array under the bare key.
func fromValues(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		if bare, ok := strings.CutSuffix(key, "[]"); ok {
			out[bare] = strings2any(vals)
			continue
		}
		switch len(vals) {
		case 0:
		case 1:
			out[key] = vals[0]
		default:
			out[key] = strings2any(vals)
		}
	}
	return out
}

func strings2any(vals []string) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
