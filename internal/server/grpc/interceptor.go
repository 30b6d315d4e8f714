package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/pegasus/internal/common"
	pb "github.com/dmitrijs2005/pegasus/internal/proto"
	"github.com/dmitrijs2005/pegasus/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// protectedMethods need a valid access token.
var protectedMethods = map[string]struct{}{
	pb.AuthService_ChangePassword_FullMethodName:    {},
	pb.AuthService_SetPin_FullMethodName:            {},
	pb.AuthService_VerifyPin_FullMethodName:         {},
	pb.AuthService_ListLoginAttempts_FullMethodName: {},
}

func accessTokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
		return values[0]
	}
	if values := md.Get("authorization"); len(values) > 0 {
		return strings.TrimPrefix(values[0], "Bearer ")
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	accessToken := accessTokenFromMetadata(ctx)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := s.codec.Verify(accessToken, auth.AccessToken, auth.VerifyOptions{})
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.TokenExpiredMessage)
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, userIDKey, claims.UserID), req)
}

func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
