// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header from the client and
// otherwise generates a UUIDv7. The id is echoed in the response header and
// stored in the request context, where FromContext and LogExtractor read it.
package requestid

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/rules"
	"github.com/dmitrymomot/validation/pkg/shape"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

type contextKey struct{}

// clientIDRules describe the accepted form of a client supplied id. They
// run without a node because a shared node records its last subject.
var clientIDRules = []shape.RuleFunc[string]{
	rules.MaxLen(128),
	rules.Matches(`[a-zA-Z0-9_-]+`, "a token of letters, digits, dashes and underscores"),
}

// Middleware sets the request id on the context and the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = generate()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// Valid reports whether id would be accepted from a client.
func Valid(id string) bool {
	for _, rule := range clientIDRules {
		if len(rule(id, nil)) > 0 {
			return false
		}
	}
	return true
}

func generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id or an empty string.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LogExtractor adds the request id to log records written with a request
// context.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
