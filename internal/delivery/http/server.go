package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"userpost-service/internal/logger"
)

type Server struct {
	handler http.Handler
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
}

func NewServer(handler http.Handler, address string, port int, log *logger.Logger) *Server {
	return &Server{
		handler: handler,
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	s.server = &http.Server{
		Addr:    address,
		Handler: s.handler,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
