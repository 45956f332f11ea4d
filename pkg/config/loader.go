package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	dotenv sync.Once
)

// Load fills v from the environment. Each type is parsed once; later calls
// copy the cached value. A failed parse is not cached.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenv.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	parsed, err := Parse[T]()
	if err != nil {
		return err
	}
	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse reads T from the environment without touching the cache.
func Parse[T any]() (T, error) {
	var v T
	if err := env.Parse(&v); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// LoadEnv reads the given env files in order. Variables already present in
// the process environment win, and so do earlier files.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("%w: %v", ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
