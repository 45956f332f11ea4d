package config

import "errors"

var (
	// ErrParsingConfig wraps env parsing failures from Load and Parse.
	ErrParsingConfig = errors.New("config: parse environment")

	// ErrLoadingEnvFile wraps read failures of files passed to LoadEnv.
	ErrLoadingEnvFile = errors.New("config: load env file")

	// ErrNilPointer is returned by Load for a nil target.
	ErrNilPointer = errors.New("config: nil target")
)
