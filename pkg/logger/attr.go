package logger

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". If err is nil, it returns an
// empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// InvalidFields records a failure tree under the key "invalid_fields" as a
// group of dotted paths. Root messages use the key "_root". An empty tree
// yields an empty Attr.
func InvalidFields(f *shape.InvalidFields) slog.Attr {
	if f.Empty() {
		return slog.Attr{}
	}
	flat := f.Flatten()
	attrs := make([]slog.Attr, 0, len(flat))
	for _, path := range slices.Sorted(maps.Keys(flat)) {
		key := path
		if key == "" {
			key = "_root"
		}
		attrs = append(attrs, slog.Any(key, flat[path]))
	}
	return Group("invalid_fields", attrs...)
}

// Path records a dotted field path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Node records the kind of a validation node, such as "group" or "tuple",
// under the key "node".
func Node(kind string) slog.Attr {
	return slog.String("node", kind)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
