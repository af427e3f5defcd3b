package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/fieldlog/fieldlog/internal/common"
)

// DeviceIDMetadataKey is the metadata key clients use to identify themselves.
const DeviceIDMetadataKey = "x-device-id"

// UnaryContextInterceptor stamps each call with a request id, carries the
// caller's device id from metadata into the context, and logs failed RPCs.
func UnaryContextInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = common.WithRequestID(ctx, uuid.New().String())
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(DeviceIDMetadataKey); len(vals) > 0 {
				ctx = common.WithDeviceID(ctx, vals[0])
			}
		}
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("server.rpc.failed",
				"method", info.FullMethod,
				"request_id", common.RequestIDFromContext(ctx),
				"device_id", common.DeviceIDFromContext(ctx),
				"error", err,
			)
		}
		return resp, err
	}
}
