// Package grpc exposes the session lifecycle over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/pegasus/internal/logging"
	pb "github.com/dmitrijs2005/pegasus/internal/proto"
	"github.com/dmitrijs2005/pegasus/internal/server/auth"
	"github.com/dmitrijs2005/pegasus/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address        string
	sessions       *services.SessionService
	pins           *services.PinService
	codec          *auth.Codec
	trustedProxies map[string]struct{}
	logger         logging.Logger
}

// NewGRPCServer creates the server. x-forwarded-for is honoured only on
// connections coming from one of trustedProxies.
func NewGRPCServer(a string, l logging.Logger, sessions *services.SessionService, pins *services.PinService, codec *auth.Codec, trustedProxies []string) *GRPCServer {
	proxies := make(map[string]struct{}, len(trustedProxies))
	for _, p := range trustedProxies {
		proxies[p] = struct{}{}
	}
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		sessions:       sessions,
		pins:           pins,
		codec:          codec,
		trustedProxies: proxies,
	}
}

// newServer builds the grpc.Server with the auth service and health checks
// registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
