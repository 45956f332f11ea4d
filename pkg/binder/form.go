package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form decodes application/x-www-form-urlencoded and multipart/form-data
// bodies. Uploaded files are not part of the value and stay available on
// r.MultipartForm.
func Form() Func {
	return func(r *http.Request) (any, error) {
		switch mt := mediaType(r); {
		case mt == "":
			return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)

		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return nil, formError(err)
			}
			return fromValues(r.PostForm), nil

		case mt == "multipart/form-data":
			_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil {
				return nil, fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
			}
			if !validBoundary(params["boundary"]) {
				return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return nil, formError(err)
			}
			if r.MultipartForm == nil {
				return map[string]any{}, nil
			}
			return fromValues(r.MultipartForm.Value), nil

		default:
			return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}
	}
}

func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
}

// validBoundary applies the RFC 2046 length and character limits.
func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 {
		return false
	}
	for _, c := range boundary {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			strings.ContainsRune("'()+_,-./:=? ", c)) {
			return false
		}
	}
	return !strings.HasSuffix(boundary, " ")
}

// Query decodes the URL query string.
func Query() Func {
	return func(r *http.Request) (any, error) {
		values, err := parseQuery(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
		}
		return fromValues(values), nil
	}
}

func parseQuery(r *http.Request) (url.Values, error) {
	if r.URL == nil {
		return nil, nil
	}
	return url.ParseQuery(r.URL.RawQuery)
}
