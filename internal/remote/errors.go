package remote

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/fieldlog/fieldlog/internal/common"
)

// classify wraps a remote failure with the taxonomy sentinel the reconciler
// keys on: connectivity failures leave retry counters untouched and stop a
// queue drain; everything else is a remote rejection that burns a retry.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConnectivity(err) {
		return fmt.Errorf("%s: %w", op, errors.Join(common.ErrOffline, err))
	}
	return fmt.Errorf("%s: %w", op, errors.Join(common.ErrRemoteRejected, err))
}

func isConnectivity(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}
