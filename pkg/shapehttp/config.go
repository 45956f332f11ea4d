package shapehttp

import (
	"net/http"
	"os"

	"github.com/dmitrymomot/validation/pkg/binder"
	"github.com/dmitrymomot/validation/pkg/config"
	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/requestid"
	"github.com/dmitrymomot/validation/pkg/shape"
)

// Config holds the middleware settings that can come from the environment.
type Config struct {
	MaxBodyBytes int64 `env:"SHAPE_MAX_BODY_BYTES" envDefault:"1048576"`
	ErrorStatus  int   `env:"SHAPE_ERROR_STATUS" envDefault:"422"`
	LogFailures  bool  `env:"SHAPE_LOG_FAILURES" envDefault:"true"`
}

// DefaultConfig matches the envDefault values of Config.
func DefaultConfig() Config {
	return Config{
		MaxBodyBytes: binder.DefaultMaxBodySize,
		ErrorStatus:  http.StatusUnprocessableEntity,
		LogFailures:  true,
	}
}

// LoadConfig reads Config through package config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv builds a Validator from Config and logger.Config loaded from
// the environment. The logger writes to stdout and adds request ids. opts
// are applied after the loaded settings.
func NewFromEnv(schema func() shape.Node, opts ...Option) (*Validator, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return nil, err
	}
	log := logger.FromConfig(logCfg, os.Stdout, logger.WithContextExtractors(requestid.LogExtractor()))
	return New(schema, append([]Option{WithConfig(cfg), WithLogger(log)}, opts...)...), nil
}
