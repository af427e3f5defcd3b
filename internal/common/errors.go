package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error taxonomy. Connectivity failures are recoverable and queued, never a
// hard user error. Remote rejections are retried up to the ceiling, then
// dropped with a loud log. Validation errors are synchronous structured
// results, never panics. Local data is never rolled back for a remote
// failure.
var (
	ErrOffline        = errors.New("offline")
	ErrRemoteRejected = errors.New("remote rejected")
	ErrTimeout        = errors.New("timeout")
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("resource not found")
	ErrLocked         = errors.New("locked by another device")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsOffline reports whether err is (or wraps) a connectivity failure. Offline
// failures leave retry counters untouched and stop a queue drain early.
func IsOffline(err error) bool {
	return errors.Is(err, ErrOffline)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

func FailedPreconditionErrorf(format string, args ...interface{}) error {
	return FailedPreconditionError(fmt.Sprintf(format, args...))
}
