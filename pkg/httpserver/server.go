package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/contactkit/pkg/logger"
)

// Server wraps http.Server with context driven graceful shutdown.
type Server struct {
	cfg       Config
	logger    *slog.Logger
	stopHooks []func(context.Context) error

	mu  sync.Mutex
	srv *http.Server
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStopHook registers a function run after the listener closed, in
// registration order. Hooks release resources such as stream hubs and
// connection pools.
func WithStopHook(fn func(context.Context) error) Option {
	return func(s *Server) {
		if fn != nil {
			s.stopHooks = append(s.stopHooks, fn)
		}
	}
}

func New(cfg Config, opts ...Option) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{cfg: cfg, logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("httpserver"))
	return s
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured timeout and runs the stop hooks.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		_ = ln.Close()
		return ErrAlreadyRunning
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.shutdown(context.WithoutCancel(ctx), srv, errCh)
}

func (s *Server) shutdown(ctx context.Context, srv *http.Server, errCh <-chan error) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, ErrShutdown, err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		errs = append(errs, err)
	}

	for _, hook := range s.stopHooks {
		if err := hook(ctx); err != nil {
			s.logger.ErrorContext(ctx, "stop hook failed", logger.Error(err))
			errs = append(errs, err)
		}
	}

	s.logger.InfoContext(ctx, "http server stopped")
	return errors.Join(errs...)
}
