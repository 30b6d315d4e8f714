package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/pegasus/internal/common"
	pb "github.com/dmitrijs2005/pegasus/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type User struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	IsVerified bool
}

type LoginAttempt struct {
	IPAddress string
	UserAgent string
	Success   bool
	CreatedAt string
}

type RegisterRequest struct {
	FirstName  string
	LastName   string
	MiddleName string
	Email      string
	Password   string
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
	dialOpts    []grpc.DialOption

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, rotates the pair once and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.TokenExpiredMessage {
		return err
	}
	if refresh == "" {
		return err
	}

	out := new(pb.RefreshResponse)
	if err := invoker(ctx, pb.AuthService_Refresh_FullMethodName, &pb.RefreshRequest{RefreshToken: refresh}, out, cc, opts...); err != nil {
		s.setTokens("", "")
		return err
	}

	access = out.AccessToken
	s.setTokens(access, out.RefreshToken)

	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func NewPegasusClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOpts: opts}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// LoggedIn reports whether a token pair is held.
func (s *GRPCClient) LoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

func userFrom(u *pb.User) *User {
	return &User{
		ID:         u.GetId(),
		FirstName:  u.GetFirstName(),
		LastName:   u.GetLastName(),
		Email:      u.GetEmail(),
		IsVerified: u.GetIsVerified(),
	}
}

func (s *GRPCClient) Register(ctx context.Context, r RegisterRequest) (*User, error) {
	out, err := s.client.Register(ctx, &pb.RegisterRequest{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MiddleName: r.MiddleName,
		Email:      r.Email,
		Password:   r.Password,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return userFrom(out.User), nil
}

func (s *GRPCClient) VerifyAccount(ctx context.Context, token string) (*User, error) {
	out, err := s.client.VerifyAccount(ctx, &pb.VerifyAccountRequest{Token: token})
	if err != nil {
		return nil, mapError(err)
	}
	return userFrom(out.User), nil
}

func (s *GRPCClient) ResendVerification(ctx context.Context, token string) (bool, error) {
	out, err := s.client.ResendVerification(ctx, &pb.ResendVerificationRequest{Token: token})
	if err != nil {
		return false, mapError(err)
	}
	return out.Success, nil
}

// Login keeps the returned token pair for later calls.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (*User, error) {
	out, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	s.setTokens(out.AccessToken, out.RefreshToken)
	return userFrom(out.User), nil
}

// Logout revokes the refresh token on the server and forgets both tokens.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := s.tokens()
	if refresh == "" {
		return ErrNotLoggedIn
	}
	_, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh})
	s.setTokens("", "")
	return mapError(err)
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) error {
	_, err := s.client.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: email})
	return mapError(err)
}

func (s *GRPCClient) ResetPassword(ctx context.Context, token, password string) error {
	_, err := s.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: token, Password: password})
	return mapError(err)
}

func (s *GRPCClient) ChangePassword(ctx context.Context, current, newPassword string) error {
	_, err := s.client.ChangePassword(ctx, &pb.ChangePasswordRequest{CurrentPassword: current, NewPassword: newPassword})
	return mapError(err)
}

func (s *GRPCClient) SetPin(ctx context.Context, pin string) error {
	_, err := s.client.SetPin(ctx, &pb.PinRequest{Pin: pin})
	return mapError(err)
}

func (s *GRPCClient) VerifyPin(ctx context.Context, pin string) error {
	_, err := s.client.VerifyPin(ctx, &pb.PinRequest{Pin: pin})
	return mapError(err)
}

func (s *GRPCClient) ListLoginAttempts(ctx context.Context, limit int) ([]LoginAttempt, error) {
	out, err := s.client.ListLoginAttempts(ctx, &pb.ListLoginAttemptsRequest{Limit: int32(limit)})
	if err != nil {
		return nil, mapError(err)
	}

	attempts := make([]LoginAttempt, 0, len(out.Attempts))
	for _, a := range out.Attempts {
		attempts = append(attempts, LoginAttempt{
			IPAddress: a.IpAddress,
			UserAgent: a.UserAgent,
			Success:   a.Success,
			CreatedAt: a.CreatedAt,
		})
	}
	return attempts, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	return mapError(err)
}
