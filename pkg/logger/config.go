package logger

import (
	"io"
	"log/slog"
)

// Config holds logger settings loaded from the environment. Unset fields
// keep the defaults of New or of the environment named by Env.
type Config struct {
	Level     *slog.Level `env:"LOG_LEVEL"`
	Format    Format      `env:"LOG_FORMAT"`
	Env       string      `env:"APP_ENV"`
	Service   string      `env:"APP_NAME"`
	AddSource bool        `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

// FromConfig creates a logger from cfg writing to w. opts are applied last.
func FromConfig(cfg Config, w io.Writer, opts ...Option) *slog.Logger {
	base := []Option{WithOutput(w)}
	if cfg.Env != "" {
		base = append(base, WithEnvironment(cfg.Env, cfg.Service))
	} else if cfg.Service != "" {
		base = append(base, WithAttr(slog.String("service", cfg.Service)))
	}
	if cfg.Level != nil {
		base = append(base, WithLevel(*cfg.Level))
	}
	if cfg.Format != "" {
		base = append(base, WithFormat(cfg.Format))
	}
	if cfg.AddSource {
		base = append(base, WithSource())
	}
	return New(append(base, opts...)...)
}
