package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/clientportal/internal/common"
	pb "github.com/dmitrijs2005/clientportal/internal/proto"
	"github.com/dmitrijs2005/clientportal/internal/server/models"
	"github.com/dmitrijs2005/clientportal/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.identities.Register(ctx, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "email already registered")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "email", req.Email)
	return &pb.RegisterResponse{IdentityId: result.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenPairResponse, error) {

	tokens, err := s.identities.Login(ctx, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.TokenPairResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenPairResponse, error) {

	tokens, err := s.identities.RefreshToken(ctx, req.RefreshToken)

	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "refresh token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	return &pb.TokenPairResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) FetchIdentity(ctx context.Context, req *pb.FetchIdentityRequest) (*pb.FetchIdentityResponse, error) {

	identityID, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	identity, err := s.identities.Fetch(ctx, identityID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "identity not found")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.FetchIdentityResponse{Id: identity.ID, Email: identity.Email}, nil
}

func (s *GRPCServer) FetchOnboardingStatus(ctx context.Context, req *pb.OnboardingStatusRequest) (*pb.OnboardingStatusResponse, error) {

	identityID, err := participantFromRequest(ctx, req.IdentityId)
	if err != nil {
		return nil, err
	}

	st, err := s.onboarding.Status(ctx, identityID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.OnboardingStatusResponse{Completed: st.Completed, CompanyId: st.CompanyID}, nil
}

func (s *GRPCServer) CompleteOnboarding(ctx context.Context, req *pb.CompleteOnboardingRequest) (*pb.CompleteOnboardingResponse, error) {

	identityID, err := participantFromRequest(ctx, req.IdentityId)
	if err != nil {
		return nil, err
	}

	_, err = s.onboarding.Complete(ctx, identityID, req.CompanyName, req.CompanyVatId, req.CompanyAddress)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyOnboarded) {
			return nil, status.Error(codes.AlreadyExists, "already onboarded")
		}
		return nil, status.Error(codes.InvalidArgument, "invalid company data")
	}

	s.logger.Info(ctx, "Onboarding completed", "identity_id", identityID)
	return &pb.CompleteOnboardingResponse{}, nil
}

func (s *GRPCServer) ListMessages(ctx context.Context, req *pb.ConversationRequest) (*pb.ListMessagesResponse, error) {

	participantID, err := participantFromRequest(ctx, req.ParticipantId)
	if err != nil {
		return nil, err
	}

	result, err := s.conversations.ListMessages(ctx, participantID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.ListMessagesResponse{}
	for _, m := range result {
		resp.Messages = append(resp.Messages, messageToProto(m))
	}
	return resp, nil
}

func (s *GRPCServer) ListFiles(ctx context.Context, req *pb.ConversationRequest) (*pb.ListFilesResponse, error) {

	participantID, err := participantFromRequest(ctx, req.ParticipantId)
	if err != nil {
		return nil, err
	}

	result, err := s.conversations.ListFiles(ctx, participantID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.ListFilesResponse{}
	for _, f := range result {
		resp.Files = append(resp.Files, fileToProto(f))
	}
	return resp, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {

	participantID, err := participantFromRequest(ctx, req.ParticipantId)
	if err != nil {
		return nil, err
	}

	message, err := s.conversations.SendMessage(ctx, participantID, req.Content, req.SenderIsClient)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid message")
	}

	return &pb.SendMessageResponse{Message: messageToProto(message)}, nil
}

func (s *GRPCServer) UploadFile(ctx context.Context, req *pb.UploadFileRequest) (*pb.UploadFileResponse, error) {

	participantID, err := participantFromRequest(ctx, req.ParticipantId)
	if err != nil {
		return nil, err
	}

	listing, err := s.conversations.UploadFile(ctx, participantID, req.FileName, req.Data)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "upload failed")
	}

	return &pb.UploadFileResponse{File: fileToProto(listing)}, nil
}

func messageToProto(m *models.Message) *pb.Message {
	return &pb.Message{
		Id:              m.ID,
		SenderIsClient:  m.SenderIsClient,
		Content:         m.Content,
		CreatedAtUnixMs: m.CreatedAt.UnixMilli(),
	}
}

func fileToProto(f *services.FileListing) *pb.FileRecord {
	return &pb.FileRecord{
		Id:              f.File.ID,
		Name:            f.File.Name,
		Size:            f.File.Size,
		ContentType:     f.File.ContentType,
		Url:             f.URL,
		CreatedAtUnixMs: f.File.CreatedAt.UnixMilli(),
	}
}
