package shapehttp

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/validation/pkg/binder"
	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/shape"
)

// Validator binds and validates requests against trees built by a factory.
type Validator struct {
	opts options
	pool sync.Pool
}

// New creates a Validator. It panics when schema is nil.
func New(schema func() shape.Node, opts ...Option) *Validator {
	if schema == nil {
		panic("shapehttp: nil schema factory")
	}
	o := options{cfg: DefaultConfig(), logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.binder == nil {
		o.binder = binder.Auto(o.cfg.MaxBodyBytes)
	}
	if o.onError == nil {
		status := o.cfg.ErrorStatus
		o.onError = func(w http.ResponseWriter, r *http.Request, err error) {
			WriteError(w, r, err, status)
		}
	}

	v := &Validator{opts: o}
	v.pool.New = func() any { return schema() }
	return v
}

// Validate binds r and validates the result. The error is either a binding
// error or a *shape.ValidationError.
func (v *Validator) Validate(r *http.Request) (any, error) {
	input, err := v.opts.binder(r)
	if err != nil {
		return nil, err
	}

	node := v.pool.Get().(shape.Node)
	defer v.pool.Put(node)

	return shape.Validate(node, input)
}

// Handler wraps next. next only runs for valid requests and finds the
// validated value with ValueFromContext.
func (v *Validator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		value, err := v.Validate(r)
		if err != nil {
			v.logFailure(r, err, time.Since(start))
			v.opts.onError(w, r, err)
			return
		}

		v.opts.logger.DebugContext(r.Context(), "request validated",
			logger.Component("shapehttp"),
			slog.String("method", r.Method),
			slog.String("route", r.URL.Path),
			logger.Duration(time.Since(start)),
		)
		next.ServeHTTP(w, r.WithContext(WithValue(r.Context(), value)))
	})
}

func (v *Validator) logFailure(r *http.Request, err error, d time.Duration) {
	if !v.opts.cfg.LogFailures {
		return
	}
	attrs := []any{
		logger.Component("shapehttp"),
		slog.String("method", r.Method),
		slog.String("route", r.URL.Path),
		logger.Duration(d),
	}
	if verr := shape.ExtractValidationError(err); verr != nil {
		v.opts.logger.InfoContext(r.Context(), "request validation failed", append(attrs, logger.InvalidFields(verr.Invalid))...)
		return
	}
	v.opts.logger.WarnContext(r.Context(), "request binding failed", append(attrs, logger.Error(err))...)
}

// Middleware is New(schema, opts...).Handler.
func Middleware(schema func() shape.Node, opts ...Option) func(http.Handler) http.Handler {
	return New(schema, opts...).Handler
}
