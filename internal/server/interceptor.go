package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/claimdesk/claims-intake/internal/common"
)

// RequestIDInterceptor tags every call with a request ID and logs its outcome.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc.error",
				"req_id", rid,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err)
			return resp, err
		}

		logger.Info("rpc.ok",
			"req_id", rid,
			"method", info.FullMethod,
			"elapsed_ms", time.Since(start).Milliseconds())
		return resp, nil
	}
}
