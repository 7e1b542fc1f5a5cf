package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const traceIDMetadataKey = "x-trace-id"

// TraceIDUnaryInterceptor attaches a request-scoped logger carrying the
// caller's trace ID, or a fresh one, and returns the ID in the response
// header.
func (h *Handler) TraceIDUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		traceID := traceIDFromMetadata(ctx)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		if err := grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID)); err != nil {
			h.logger.Debug().Err(err).Str("method", info.FullMethod).Msg("unable to set trace ID header")
		}

		return handler(h.logger.WithTraceID(ctx, traceID), req)
	}
}

func traceIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(traceIDMetadataKey); len(values) > 0 {
		return values[0]
	}
	return ""
}
