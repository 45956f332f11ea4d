package shapehttp

import "context"

type valueKey struct{}

// WithValue stores a validated value in ctx.
func WithValue(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, valueKey{}, validated{v})
}

// ValueFromContext returns the value validated by Middleware.
func ValueFromContext(ctx context.Context) (any, bool) {
	v, ok := ctx.Value(valueKey{}).(validated)
	return v.value, ok
}

// ObjectFromContext is ValueFromContext for object schemas.
func ObjectFromContext(ctx context.Context) (map[string]any, bool) {
	v, ok := ValueFromContext(ctx)
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

// validated wraps the value so that a nil result is still found.
type validated struct{ value any }
