package grpc

import (
	"context"

	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/service"
)

// InstanceValidator validates a whole value against its declared constraints.
type InstanceValidator interface {
	ValidateInstance(ctx context.Context, instance any) error
}

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer, the request validator and the
// structured logger. A handler instance is created once at startup and shared
// by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// validator checks every inbound request message.
	validator InstanceValidator

	logger *logger.Logger
}

// NewHandler constructs a [Handler].
func NewHandler(services *service.Services, validator InstanceValidator, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:  services,
		validator: validator,
		logger:    logger,
	}
}
