package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCErrorConstructorsCarryCodes(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{InvalidArgumentError("bad id"), codes.InvalidArgument, "bad id"},
		{InvalidArgumentErrorf("bad %s", "path"), codes.InvalidArgument, "bad path"},
		{NotFoundError("no report"), codes.NotFound, "no report"},
		{InternalError("boom"), codes.Internal, "boom"},
		{InternalErrorf("save: %v", errors.New("disk")), codes.Internal, "save: disk"},
		{FailedPreconditionError("not ready"), codes.FailedPrecondition, "not ready"},
		{FailedPreconditionErrorf("cannot %s", "submit"), codes.FailedPrecondition, "cannot submit"},
	}
	for _, c := range cases {
		st, ok := status.FromError(c.err)
		assert.True(t, ok)
		assert.Equal(t, c.code, st.Code())
		assert.Equal(t, c.msg, st.Message())
	}
}

func TestIsOfflineSeesWrappedSentinel(t *testing.T) {
	err := fmt.Errorf("push report: %w", errors.Join(ErrOffline, errors.New("dial tcp")))
	assert.True(t, IsOffline(err))
	assert.False(t, IsOffline(ErrRemoteRejected))
}

func TestAppErrorUnwraps(t *testing.T) {
	cause := errors.New("row missing")
	err := NewAppError("NOT_FOUND", "report lookup", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "row missing")
}
