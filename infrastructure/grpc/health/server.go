// Package health exposes the standard gRPC health service of the hub.
package health

import (
	"log/slog"
	"net"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name probes ask for. The empty name reports the whole server.
const ServiceName = "chat.Hub"

type Server struct {
	grpcServer *grpc.Server
	health     *grpchealth.Server
	log        *slog.Logger
}

func NewServer(log *slog.Logger) *Server {
	s := &Server{
		grpcServer: grpc.NewServer(),
		health:     grpchealth.NewServer(),
		log:        log,
	}
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.SetServing(false)
	return s
}

// SetServing flips both the overall and the hub status.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve blocks until Stop is called or lis fails.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC health service listening", "addr", lis.Addr().String())
	return s.grpcServer.Serve(lis)
}

// Stop reports NOT_SERVING to watchers then stops accepting calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
