package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/clientportal/internal/logging"
	pb "github.com/dmitrijs2005/clientportal/internal/proto"
	"github.com/dmitrijs2005/clientportal/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedPortalServiceServer
	address       string
	identities    *services.IdentityService
	onboarding    *services.OnboardingService
	conversations *services.ConversationService
	logger        logging.Logger
	jwtSecret     []byte
}

func NewGRPCServer(a string, l logging.Logger, is *services.IdentityService,
	os *services.OnboardingService, cs *services.ConversationService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		identities:    is,
		onboarding:    os,
		conversations: cs,
		jwtSecret:     []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	// registers service
	pb.RegisterPortalServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
