// Package config loads env-tagged structs with github.com/caarlos0/env/v11.
//
// Load parses a struct once per type and serves later calls from a cache, so
// packages can ask for their settings wherever they need them:
//
//	type Config struct {
//	    MaxBodyBytes int64 `env:"SHAPE_MAX_BODY_BYTES" envDefault:"1048576"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The first Load also reads a .env file from the working directory when one
// exists. LoadEnv reads other files through github.com/joho/godotenv; it does
// not override variables that are already set. Reset clears the cache, which
// is mostly useful in tests.
package config
