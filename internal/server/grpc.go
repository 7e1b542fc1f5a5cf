package server

import (
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	myGRPC "github.com/MKhiriev/go-contract-guard/internal/handler/grpc"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
)

type grpcServer struct {
	server          *grpc.Server
	health          *health.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			handler.TraceIDUnaryInterceptor(),
			handler.ValidationUnaryInterceptor(),
		),
	}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}
	server := grpc.NewServer(opts...)

	return &grpcServer{
		server:          server,
		health:          handler.RegisterServices(server),
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	g.server.GracefulStop()
}
