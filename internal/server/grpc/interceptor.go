package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/clientportal/internal/common"
	pb "github.com/dmitrijs2005/clientportal/internal/proto"
	"github.com/dmitrijs2005/clientportal/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const identityIDKey ctxKey = "identityID"

// publicMethods are callable without an access token.
var publicMethods = map[string]bool{
	pb.PortalService_Register_FullMethodName:     true,
	pb.PortalService_Login_FullMethodName:        true,
	pb.PortalService_RefreshToken_FullMethodName: true,
}

func (s *GRPCServer) authenticate(ctx context.Context) (string, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}

	identityID, err := auth.GetIdentityIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		// Expired tokens keep their distinct message so clients can
		// refresh and retry instead of forcing a new sign-in.
		if errors.Is(err, common.ErrTokenExpired) {
			return "", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return "", status.Error(codes.Unauthenticated, "invalid token")
	}
	return identityID, nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !publicMethods[info.FullMethod] {
		identityID, err := s.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		ctx = context.WithValue(ctx, identityIDKey, identityID)
	}

	return handler(ctx, req)
}

// wrappedStream overrides the stream context so handlers can read the
// authenticated identity.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	identityID, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	ctx := context.WithValue(ss.Context(), identityIDKey, identityID)
	return handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})
}

// identityFromContext returns the authenticated identity id stored by the
// interceptors.
func identityFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(identityIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "missing identity")
	}
	return id, nil
}

// participantFromRequest authorizes access to a conversation: a client may
// only address its own participant id. An empty request id defaults to the
// authenticated identity.
func participantFromRequest(ctx context.Context, requested string) (string, error) {
	identityID, err := identityFromContext(ctx)
	if err != nil {
		return "", err
	}
	if requested == "" || requested == identityID {
		return identityID, nil
	}
	return "", status.Error(codes.PermissionDenied, "foreign conversation")
}
