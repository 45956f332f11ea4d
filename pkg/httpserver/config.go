package httpserver

import "time"

// Config holds server settings loaded from the environment.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a Server from cfg. Zero fields keep the defaults;
// opts are applied after cfg.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	base := make([]Option, 0, 5+len(opts))
	if cfg.Addr != "" {
		base = append(base, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		base = append(base, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		base = append(base, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		base = append(base, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		base = append(base, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	return New(append(base, opts...)...)
}
