package binder

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Auto merges the query string, the body chosen by Content-Type and, when
// the request was routed by chi, the path parameters. Body keys override
// query keys and path keys override both. A request without Content-Type
// has no body source.
func Auto(limit int64) Func {
	return func(r *http.Request) (any, error) {
		sources := []Func{Query()}

		if mediaType(r) != "" {
			body, err := bodySource(r, limit)
			if err != nil {
				return nil, err
			}
			sources = append(sources, body)
		}

		if chi.RouteContext(r.Context()) != nil {
			sources = append(sources, ChiPath())
		}
		return Merge(sources...)(r)
	}
}

// Body decodes the body alone, chosen by Content-Type. Unlike Auto it
// accepts any JSON or YAML value, not only objects.
func Body(limit int64) Func {
	return func(r *http.Request) (any, error) {
		if mediaType(r) == "" {
			return nil, fmt.Errorf("%w: expected a JSON, YAML or form body", ErrMissingContentType)
		}
		body, err := bodySource(r, limit)
		if err != nil {
			return nil, err
		}
		return body(r)
	}
}

func bodySource(r *http.Request, limit int64) (Func, error) {
	switch mt := mediaType(r); {
	case mt == "application/json":
		return JSONWithLimit(limit), nil
	case slices.Contains(YAMLMediaTypes, mt):
		return YAMLWithLimit(limit), nil
	case mt == "application/x-www-form-urlencoded", mt == "multipart/form-data":
		r.Body = http.MaxBytesReader(nil, r.Body, limit)
		return Form(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
	}
}
