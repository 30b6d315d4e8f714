package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotVerified   = errors.New("account not verified")
	ErrLocked        = errors.New("account locked")
	ErrNotFound      = errors.New("not found")
	ErrNotLoggedIn   = errors.New("not logged in")
)

// mapError converts a gRPC status error into a sentinel error, keeping the
// server message.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var kind error
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		kind = ErrUnavailable
	case codes.Unauthenticated:
		kind = ErrUnauthorized
	case codes.InvalidArgument:
		kind = ErrInvalidInput
	case codes.AlreadyExists:
		kind = ErrAlreadyExists
	case codes.FailedPrecondition:
		kind = ErrNotVerified
	case codes.PermissionDenied:
		kind = ErrLocked
	case codes.NotFound:
		kind = ErrNotFound
	default:
		return err
	}
	return fmt.Errorf("%w: %s", kind, st.Message())
}
