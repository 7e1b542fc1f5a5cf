package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-contract-guard/internal/app"
	"github.com/MKhiriev/go-contract-guard/internal/validation"
)

// ValidationUnaryInterceptor validates every request message before the
// method handler runs and converts validation errors returned by the handler
// into gRPC statuses.
func (h *Handler) ValidationUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := h.validator.ValidateInstance(ctx, req); err != nil {
			h.logger.Debug().Err(err).Str("method", info.FullMethod).Msg("request message rejected")
			return nil, statusFromError(err).Err()
		}

		resp, err := handler(ctx, req)
		if err != nil {
			if _, isStatus := status.FromError(err); isStatus {
				return resp, err
			}
			return nil, statusFromError(err).Err()
		}
		return resp, nil
	}
}

// statusFromError maps err to a gRPC status. Argument failures carry a
// BadRequest detail with one field violation per constraint violation.
func statusFromError(err error) *status.Status {
	failure, ok := validation.AsFailure(err)
	switch {
	case ok && failure.AfterExecution():
		return status.New(codes.Internal, app.MsgInternalServerError)
	case ok:
		st := status.New(codes.InvalidArgument, app.MsgValidationFailed)
		badRequest := &errdetails.BadRequest{}
		for _, v := range failure.Violations() {
			badRequest.FieldViolations = append(badRequest.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Path,
				Description: v.Message,
			})
		}
		detailed, detailErr := st.WithDetails(badRequest)
		if detailErr != nil {
			return st
		}
		return detailed
	case errors.Is(err, validation.ErrDynamicValidationUnsupported):
		return status.New(codes.FailedPrecondition, app.MsgValidationUnavailable)
	default:
		return status.New(codes.Internal, app.MsgInternalServerError)
	}
}
