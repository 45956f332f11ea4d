package httpserver

import "errors"

var (
	// ErrStart wraps listen and serve failures returned by Run.
	ErrStart = errors.New("http server: start")

	// ErrShutdown wraps failures to drain connections within the shutdown timeout.
	ErrShutdown = errors.New("http server: shutdown")
)
