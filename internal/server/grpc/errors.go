package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// LockedUntilTrailer carries the RFC3339 end of a PIN lockout.
const LockedUntilTrailer = "locked-until"

// toStatus maps a service error onto a gRPC status. Internal failures are
// logged and replaced with a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var locked *common.AccountLockedError
	switch {
	case errors.As(err, &locked):
		_ = grpc.SetTrailer(ctx, metadata.Pairs(LockedUntilTrailer, locked.Until.UTC().Format(time.RFC3339)))
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrAccountLocked):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrAccountNotVerified):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorExpired), errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
