package binder

import (
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"
)

// YAMLMediaTypes lists the accepted Content-Type values for YAML bodies.
var YAMLMediaTypes = []string{"application/yaml", "application/x-yaml", "text/yaml"}

// YAML decodes a YAML body of at most DefaultMaxBodySize bytes. Mappings
// become map[string]any and integers become int, which number checks accept.
func YAML() Func {
	return YAMLWithLimit(DefaultMaxBodySize)
}

// YAMLWithLimit is YAML with a custom body size limit.
func YAMLWithLimit(limit int64) Func {
	return func(r *http.Request) (any, error) {
		if err := checkMediaType(r, YAMLMediaTypes...); err != nil {
			return nil, err
		}

		body, err := readBody(r, limit, ErrFailedToParseYAML)
		if err != nil {
			return nil, err
		}

		return DecodeYAML(body)
	}
}

// DecodeYAML decodes a single YAML document into plain Go values.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseYAML, err)
	}
	return normalizeYAML(v), nil
}

// normalizeYAML converts mappings with non-string keys into map[string]any.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	default:
		return v
	}
}
