package binder

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Path builds an object from the named path parameters using extractor.
// Parameters that extract to an empty string are left out so that a
// shape.Group reports them as missing.
//
//	binder.Path(chi.URLParam, "id", "slug")
func Path(extractor func(r *http.Request, key string) string, keys ...string) Func {
	return func(r *http.Request) (any, error) {
		out := make(map[string]any, len(keys))
		for _, key := range keys {
			if v := extractor(r, key); v != "" {
				out[key] = v
			}
		}
		return out, nil
	}
}

// ChiPath builds an object from every URL parameter matched by the chi
// router. Values are unescaped; wildcard segments are stored under "*".
func ChiPath() Func {
	return func(r *http.Request) (any, error) {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return nil, fmt.Errorf("%w: no chi route context", ErrFailedToParsePath)
		}

		params := rctx.URLParams
		out := make(map[string]any, len(params.Keys))
		for i, key := range params.Keys {
			raw := params.Values[i]
			v, err := url.PathUnescape(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrFailedToParsePath, key, err)
			}
			if v != "" {
				out[key] = v
			}
		}
		return out, nil
	}
}
