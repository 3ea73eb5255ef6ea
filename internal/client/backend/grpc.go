package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/dmitrijs2005/clientportal/internal/common"
	pb "github.com/dmitrijs2005/clientportal/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCBackend struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.PortalServiceClient
	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onTokens     func(accessToken, refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token to every unary call and,
// when the server reports it expired, rotates the token pair once and
// retries the call.
func (s *GRPCBackend) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.getAccessToken())

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		refreshToken := s.getRefreshToken()
		if refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
		if err != nil {
			return err
		}

		s.storeTokens(refreshTokenResponse.AccessToken, refreshTokenResponse.RefreshToken)

		ctx = withAccessToken(ctx, s.getAccessToken())
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

// accessTokenStreamInterceptor attaches the access token when a stream is
// opened. A stream rejected for an expired token is not retried here; the
// change listener resubscribes with backoff and the next unary call rotates
// the pair.
func (s *GRPCBackend) accessTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withAccessToken(ctx, s.getAccessToken()), desc, cc, method, opts...)
}

func NewGRPCBackend(endpointURL string) (*GRPCBackend, error) {
	c := &GRPCBackend{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCBackend) initGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.accessTokenStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPortalServiceClient(conn)
	return nil
}

func (s *GRPCBackend) getAccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

func (s *GRPCBackend) getRefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshToken
}

func (s *GRPCBackend) storeTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	onTokens := s.onTokens
	s.mu.Unlock()

	if onTokens != nil {
		onTokens(accessToken, refreshToken)
	}
}

// Tokens returns the current token pair.
func (s *GRPCBackend) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// SetTokens installs a token pair without firing the change callback. Used
// when restoring persisted credentials on startup and when signing out.
func (s *GRPCBackend) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

// OnTokensChanged registers a callback invoked whenever the server issues a
// new token pair (sign-in or refresh rotation). The session uses it to keep
// the persisted pair current.
func (s *GRPCBackend) OnTokensChanged(fn func(accessToken, refreshToken string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTokens = fn
}

func (s *GRPCBackend) Register(ctx context.Context, email string, password []byte) (string, error) {

	req := &pb.RegisterRequest{Email: email, Password: string(password)}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.IdentityId, nil
}

func (s *GRPCBackend) Login(ctx context.Context, email string, password []byte) error {

	req := &pb.LoginRequest{Email: email, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.storeTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCBackend) FetchIdentity(ctx context.Context) (*models.Identity, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	resp, err := s.client.FetchIdentity(ctx, &pb.FetchIdentityRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.Identity{ID: resp.Id, Email: resp.Email}, nil
}

func (s *GRPCBackend) FetchOnboardingStatus(ctx context.Context, identityID string) (*models.OnboardingStatus, error) {

	req := &pb.OnboardingStatusRequest{IdentityId: identityID}

	resp, err := s.client.FetchOnboardingStatus(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.OnboardingStatus{
		IdentityID:    identityID,
		Completed:     resp.Completed,
		CompanyID:     resp.CompanyId,
		LastCheckedAt: time.Now(),
	}, nil
}

func (s *GRPCBackend) CompleteOnboarding(ctx context.Context, identityID, companyName, companyVatID, companyAddress string) error {

	req := &pb.CompleteOnboardingRequest{
		IdentityId:     identityID,
		CompanyName:    companyName,
		CompanyVatId:   companyVatID,
		CompanyAddress: companyAddress,
	}

	_, err := s.client.CompleteOnboarding(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCBackend) ListMessages(ctx context.Context, participantID string) ([]*models.Message, error) {

	resp, err := s.client.ListMessages(ctx, &pb.ConversationRequest{ParticipantId: participantID})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]*models.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		result = append(result, messageFromProto(m))
	}
	return result, nil
}

func (s *GRPCBackend) ListFiles(ctx context.Context, participantID string) ([]*models.FileRecord, error) {

	resp, err := s.client.ListFiles(ctx, &pb.ConversationRequest{ParticipantId: participantID})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]*models.FileRecord, 0, len(resp.Files))
	for _, f := range resp.Files {
		result = append(result, fileFromProto(f))
	}
	return result, nil
}

func (s *GRPCBackend) SendMessage(ctx context.Context, participantID, content string) (*models.Message, error) {

	req := &pb.SendMessageRequest{ParticipantId: participantID, Content: content, SenderIsClient: true}

	resp, err := s.client.SendMessage(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return messageFromProto(resp.Message), nil
}

func (s *GRPCBackend) UploadFile(ctx context.Context, participantID, fileName string, data []byte) (*models.FileRecord, error) {

	req := &pb.UploadFileRequest{ParticipantId: participantID, FileName: fileName, Data: data}

	resp, err := s.client.UploadFile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return fileFromProto(resp.File), nil
}

type changeSubscription struct {
	stream pb.PortalService_SubscribeChangesClient
	cancel context.CancelFunc
	mapErr func(error) error
}

func (c *changeSubscription) Recv() (*ChangeEvent, error) {
	ev, err := c.stream.Recv()
	if err != nil {
		return nil, c.mapErr(err)
	}
	return &ChangeEvent{ParticipantID: ev.ParticipantId, Kind: ev.Kind, EntityID: ev.EntityId}, nil
}

func (c *changeSubscription) Close() {
	c.cancel()
}

func (s *GRPCBackend) SubscribeChanges(ctx context.Context, participantID string) (ChangeSubscription, error) {

	ctx, cancel := context.WithCancel(ctx)

	stream, err := s.client.SubscribeChanges(ctx, &pb.ConversationRequest{ParticipantId: participantID})
	if err != nil {
		cancel()
		return nil, s.mapError(err)
	}

	return &changeSubscription{stream: stream, cancel: cancel, mapErr: s.mapError}, nil
}

func (s *GRPCBackend) Close() error {
	return s.conn.Close()
}

func (s *GRPCBackend) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrorUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrorUnavailable
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func messageFromProto(m *pb.Message) *models.Message {
	return &models.Message{
		ID:             m.Id,
		SenderIsClient: m.SenderIsClient,
		Content:        m.Content,
		CreatedAt:      time.UnixMilli(m.CreatedAtUnixMs),
	}
}

func fileFromProto(f *pb.FileRecord) *models.FileRecord {
	return &models.FileRecord{
		ID:          f.Id,
		Name:        f.Name,
		Size:        f.Size,
		ContentType: f.ContentType,
		URL:         f.Url,
		CreatedAt:   time.UnixMilli(f.CreatedAtUnixMs),
	}
}
