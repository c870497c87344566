package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
)

type Config struct {
	Host string
}

type Server struct {
	cfg        Config
	handler    http.Handler
	httpServer *http.Server
}

func NewServer(cfg Config, handler http.Handler) *Server {
	return &Server{
		cfg:     cfg,
		handler: handler,
	}
}

func (s *Server) Start(ctx context.Context) error {
	if s.httpServer != nil {
		return errors.New("server is already running")
	}

	s.httpServer = &http.Server{
		Addr:              s.cfg.Host,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("failed to serve: %v", err)
		}
	}()

	log.Printf("HTTP server is running on %s", s.cfg.Host)

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return errors.New("server is not running")
	}
	return s.httpServer.Shutdown(ctx)
}
