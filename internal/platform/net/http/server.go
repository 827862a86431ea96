package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"prlens/internal/platform/config"
	"prlens/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerConfig holds listener settings
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}

// ServerConfigFrom reads API_PORT, WRITE_TIMEOUT and SHUTDOWN_TIMEOUT under cfg
func ServerConfigFrom(cfg config.Conf) ServerConfig {
	return ServerConfig{
		Addr:              cfg.MayAddr("API_PORT", ":4000"),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   cfg.MayDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// Server wraps a chi mux and an http.Server
type Server struct {
	cfg ServerConfig
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer builds a server; opts receive the mux before any route is added
func NewServer(cfg ServerConfig, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		cfg: cfg,
		mux: m,
		srv: &stdhttp.Server{
			Addr:              cfg.Addr,
			Handler:           m,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
	}
}

// Router returns the Router facade over the mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.cfg.Addr }

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	grace := s.cfg.ShutdownTimeout
	if grace <= 0 {
		grace = 15 * time.Second
	}
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), grace)
	defer cancel()
	log.Info().Dur("grace", grace).Msg("http shutting down")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}
