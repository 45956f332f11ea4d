package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON decodes an application/json body of at most DefaultMaxBodySize bytes.
func JSON() Func {
	return JSONWithLimit(DefaultMaxBodySize)
}

// JSONWithLimit is JSON with a custom body size limit.
func JSONWithLimit(limit int64) Func {
	return func(r *http.Request) (any, error) {
		if err := checkMediaType(r, "application/json"); err != nil {
			return nil, err
		}

		body, err := readBody(r, limit, ErrFailedToParseJSON)
		if err != nil {
			return nil, err
		}

		return DecodeJSON(body)
	}
}

// DecodeJSON decodes a single JSON value. Numbers become float64.
func DecodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	return v, nil
}
