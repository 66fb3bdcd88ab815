// Package grpc exposes the standard gRPC health service so orchestrators can
// probe the chat server without speaking its line protocol.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service entry reported next to the overall one.
const ServiceName = "roomchat"

type HealthServer struct {
	log     *slog.Logger
	address string
	health  *health.Server

	mu       sync.Mutex
	listener net.Listener
}

func NewHealthServer(log *slog.Logger, address string) *HealthServer {
	return &HealthServer{log: log, address: address, health: health.NewServer()}
}

func (s *HealthServer) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	s.listener = listener
	return nil
}

func (s *HealthServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.address
	}
	return s.listener.Addr().String()
}

// Run reports SERVING until ctx is canceled, then NOT_SERVING, then stops.
func (s *HealthServer) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	server := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(server, s.health)
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting gRPC health server", "address", listener.Addr().String(), "at", time.Now().UTC())
		if err := server.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.log.Info("Shutting down gRPC health server")
	case runErr = <-errChan:
	}

	s.health.Shutdown()
	server.GracefulStop()

	s.mu.Lock()
	s.listener = nil
	s.mu.Unlock()
	return runErr
}
