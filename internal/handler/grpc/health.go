package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RegisterServices registers the gRPC services of the application on server
// and returns the health server so callers can flip its status on shutdown.
func (h *Handler) RegisterServices(server *grpc.Server) *health.Server {
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	h.logger.Debug().Msg("gRPC services registered")
	return healthServer
}
