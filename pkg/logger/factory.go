package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Deployment environments recognised by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Option configures logger creation.
type Option func(*options)

type options struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	addSource  bool
	extractors []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format. It panics on an unknown format so that
// misconfiguration stops startup.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

func WithSource() Option {
	return func(o *options) { o.addSource = true }
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// WithContextExtractors registers functions that add attributes from the
// record's context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) { o.extractors = append(o.extractors, extractors...) }
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	return func(o *options) {
		if name == "" || key == nil {
			return
		}
		o.extractors = append(o.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithEnvironment applies per-environment defaults: debug text output for
// development, info JSON output otherwise. "prod" and "stage" are accepted
// as aliases; anything else counts as development. service and env are
// attached to every record.
func WithEnvironment(env, service string) Option {
	return func(o *options) {
		switch strings.ToLower(env) {
		case EnvProduction, "prod":
			env = EnvProduction
			o.level, o.format = slog.LevelInfo, FormatJSON
		case EnvStaging, "stage":
			env = EnvStaging
			o.level, o.format = slog.LevelInfo, FormatJSON
		default:
			env = EnvDevelopment
			o.level, o.format = slog.LevelDebug, FormatText
		}
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
		o.attrs = append(o.attrs, slog.String("env", env))
	}
}

// New creates a logger. The defaults are JSON output at info level on stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level, AddSource: o.addSource}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(NewContextHandler(handler, o.extractors...))
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
