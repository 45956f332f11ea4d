package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*config)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// WithAddr sets the listen address. It panics on an empty address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("WithReadTimeout", d)
	return func(c *config) { c.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustPositive("WithWriteTimeout", d)
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout limits how long keep-alive connections wait for the next request.
func WithIdleTimeout(d time.Duration) Option {
	mustPositive("WithIdleTimeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout limits how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("WithShutdownTimeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithLogger sets the logger for lifecycle events. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic(name + ": duration must be > 0")
	}
}
