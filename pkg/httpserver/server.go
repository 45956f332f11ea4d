package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/validation/pkg/logger"
)

// Server runs one handler until its context ends. A Server runs once.
type Server struct {
	cfg   config
	ready chan struct{}

	mu      sync.Mutex
	started bool
	addr    net.Addr
}

func New(opts ...Option) *Server {
	cfg := config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Server{cfg: cfg, ready: make(chan struct{})}
}

// Ready is closed once the server accepts connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address, or nil before Ready.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves handler and blocks until ctx is cancelled or a SIGINT or
// SIGTERM arrives, then shuts down gracefully. A nil handler responds 404.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already started"))
	}
	s.started = true
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.cfg.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  s.cfg.readTimeout,
		WriteTimeout: s.cfg.writeTimeout,
		IdleTimeout:  s.cfg.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()
	close(s.ready)
	s.cfg.logger.InfoContext(ctx, "http server listening", logger.Component("httpserver"), slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return errors.Join(ErrStart, err)
	case <-ctx.Done():
	}

	start := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	s.cfg.logger.InfoContext(ctx, "http server stopped", logger.Component("httpserver"), logger.Duration(time.Since(start)))
	return nil
}
