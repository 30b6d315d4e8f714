package grpc

import (
	"context"
	"net"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/pegasus/internal/proto"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

func toUser(u models.PublicUser) *pb.User {
	return &pb.User{
		Id:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Email:      u.Email,
		IsVerified: u.IsVerified,
	}
}

// clientInfo returns the caller's IP and user agent for the attempt ledger.
// The first x-forwarded-for hop replaces the peer address only when the
// peer is a trusted proxy.
func (s *GRPCServer) clientInfo(ctx context.Context) (ip, userAgent string) {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		ip = p.Addr.String()
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ip, ""
	}
	if v := md.Get("user-agent"); len(v) > 0 {
		userAgent = v[0]
	}
	if _, trusted := s.trustedProxies[ip]; trusted {
		if v := md.Get("x-forwarded-for"); len(v) > 0 {
			if hop := strings.TrimSpace(strings.Split(v[0], ",")[0]); hop != "" {
				ip = hop
			}
		}
	}
	return ip, userAgent
}

func (s *GRPCServer) requireUser(ctx context.Context) (string, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing user")
	}
	return userID, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	user, err := s.sessions.Register(ctx, services.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RegisterResponse{User: toUser(*user)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	ip, ua := s.clientInfo(ctx)
	res, err := s.sessions.Login(ctx, services.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: ip,
		UserAgent: ua,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{
		User:         toUser(res.User),
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) VerifyAccount(ctx context.Context, req *pb.VerifyAccountRequest) (*pb.VerifyAccountResponse, error) {
	user, err := s.sessions.VerifyAccount(ctx, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.VerifyAccountResponse{User: toUser(*user)}, nil
}

func (s *GRPCServer) ResendVerification(ctx context.Context, req *pb.ResendVerificationRequest) (*pb.SuccessResponse, error) {
	sent, err := s.sessions.ResendVerification(ctx, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SuccessResponse{Success: sent}, nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.RefreshResponse, error) {
	pair, err := s.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RefreshResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// ForgotPassword always reports success so the response does not reveal
// which emails are registered.
func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.SuccessResponse, error) {
	if err := s.sessions.ForgotPassword(ctx, req.Email); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SuccessResponse{Success: true}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.SuccessResponse, error) {
	if err := s.sessions.ResetPassword(ctx, req.Token, req.Password); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SuccessResponse{Success: true}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.SuccessResponse, error) {
	if err := s.sessions.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SuccessResponse{Success: true}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.SuccessResponse, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SuccessResponse{Success: true}, nil
}

func (s *GRPCServer) SetPin(ctx context.Context, req *pb.PinRequest) (*pb.SuccessResponse, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.pins.SetPin(ctx, userID, req.Pin); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SuccessResponse{Success: true}, nil
}

func (s *GRPCServer) VerifyPin(ctx context.Context, req *pb.PinRequest) (*pb.SuccessResponse, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.pins.VerifyPin(ctx, userID, req.Pin); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SuccessResponse{Success: true}, nil
}

// ListLoginAttempts returns the caller's most recent attempts, newest first.
func (s *GRPCServer) ListLoginAttempts(ctx context.Context, req *pb.ListLoginAttemptsRequest) (*pb.ListLoginAttemptsResponse, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	attempts, err := s.sessions.Ledger().List(ctx, userID, int(req.Limit))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.LoginAttempt, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, &pb.LoginAttempt{
			Id:        a.ID,
			IpAddress: a.IPAddress,
			UserAgent: a.UserAgent,
			Success:   a.Success,
			CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return &pb.ListLoginAttemptsResponse{Attempts: out}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "ok"}, nil
}
