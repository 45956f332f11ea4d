package shapehttp

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/validation/pkg/binder"
)

// ErrorHandler writes the response for a failed request. err is either a
// binding error or a *shape.ValidationError.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type Option func(*options)

type options struct {
	cfg     Config
	logger  *slog.Logger
	binder  binder.Func
	onError ErrorHandler
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithStatus sets the status used for validation failures.
func WithStatus(status int) Option {
	return func(o *options) { o.cfg.ErrorStatus = status }
}

// WithLogger sets the logger for failures and timings. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBinder replaces the default binder, which is binder.Auto with the
// configured body limit.
func WithBinder(b binder.Func) Option {
	return func(o *options) { o.binder = b }
}

// WithErrorHandler replaces the JSON error writer.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) { o.onError = h }
}
