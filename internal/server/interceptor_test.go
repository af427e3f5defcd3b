package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/fieldlog/fieldlog/internal/common"
)

func TestUnaryContextInterceptorAttachesIdentity(t *testing.T) {
	inter := UnaryContextInterceptor(nil)
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(DeviceIDMetadataKey, "device-a"))

	var gotRequestID, gotDeviceID string
	_, err := inter(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/fieldlog.v1.ReportsService/GetReport"},
		func(ctx context.Context, _ any) (any, error) {
			gotRequestID = common.RequestIDFromContext(ctx)
			gotDeviceID = common.DeviceIDFromContext(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "device-a", gotDeviceID)
}

func TestUnaryContextInterceptorPassesErrorThrough(t *testing.T) {
	inter := UnaryContextInterceptor(nil)
	want := errors.New("handler failed")

	_, err := inter(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/fieldlog.v1.ReportsService/GetReport"},
		func(context.Context, any) (any, error) { return nil, want })
	assert.ErrorIs(t, err, want)
}

func TestUnaryContextInterceptorWithoutMetadata(t *testing.T) {
	inter := UnaryContextInterceptor(nil)

	var gotDeviceID string
	_, err := inter(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/fieldlog.v1.LocksService/CheckLock"},
		func(ctx context.Context, _ any) (any, error) {
			gotDeviceID = common.DeviceIDFromContext(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	assert.Empty(t, gotDeviceID)
}
