package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/clientportal/internal/common"
	"github.com/dmitrijs2005/clientportal/internal/dbx"
	"github.com/dmitrijs2005/clientportal/internal/server/blob"
	"github.com/dmitrijs2005/clientportal/internal/server/models"
	"github.com/dmitrijs2005/clientportal/internal/server/notify"
	"github.com/dmitrijs2005/clientportal/internal/server/repositories/repomanager"
)

// BlobStore is the object storage surface ConversationService needs.
// Implemented by blob.Store.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

// FileListing is a file metadata row plus a short-lived download URL.
type FileListing struct {
	File *models.File
	URL  string
}

// ConversationService owns the message thread and file attachments of a
// participant. Every successful mutation publishes a change event so
// subscribed clients refetch.
type ConversationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       BlobStore
	hub         *notify.Hub
}

func NewConversationService(db *sql.DB, m repomanager.RepositoryManager, blobs BlobStore, hub *notify.Hub) *ConversationService {
	return &ConversationService{db: db, repomanager: m, blobs: blobs, hub: hub}
}

// Subscribe registers for the participant's change events.
func (s *ConversationService) Subscribe(participantID string) (<-chan notify.Event, func()) {
	return s.hub.Subscribe(participantID)
}

// ListMessages returns the participant's thread ordered oldest first.
func (s *ConversationService) ListMessages(ctx context.Context, participantID string) ([]*models.Message, error) {
	repo := s.repomanager.Messages(s.db)
	result, err := repo.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %v", err)
	}
	return result, nil
}

// ListFiles returns the participant's files with fresh download URLs.
func (s *ConversationService) ListFiles(ctx context.Context, participantID string) ([]*FileListing, error) {
	repo := s.repomanager.Files(s.db)
	files, err := repo.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %v", err)
	}

	result := make([]*FileListing, 0, len(files))
	for _, f := range files {
		url, err := s.blobs.PresignGet(ctx, f.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("error signing download url: %v", err)
		}
		result = append(result, &FileListing{File: f, URL: url})
	}
	return result, nil
}

// SendMessage appends a message to the thread and notifies subscribers.
func (s *ConversationService) SendMessage(ctx context.Context, participantID string, content string, senderIsClient bool) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Messages(s.db)
	message, err := repo.Create(ctx, &models.Message{
		ParticipantID:  participantID,
		SenderIsClient: senderIsClient,
		Content:        content,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating message: %v", err)
	}

	s.hub.Publish(notify.Event{ParticipantID: participantID, Kind: "message", EntityID: message.ID})
	return message, nil
}

// UploadFile stores the bytes in object storage, records the metadata row,
// and notifies subscribers. The object is written before the row so a
// failure cannot leave a listed file without bytes behind it.
func (s *ConversationService) UploadFile(ctx context.Context, participantID string, name string, data []byte) (*FileListing, error) {
	if strings.TrimSpace(name) == "" || len(data) == 0 {
		return nil, common.ErrorInternal
	}

	contentType := http.DetectContentType(data)
	key := blob.RandomStorageKey(participantID)

	if err := s.blobs.Put(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("error uploading file: %v", err)
	}

	file := &models.File{
		ParticipantID: participantID,
		Name:          name,
		Size:          int64(len(data)),
		ContentType:   contentType,
		StorageKey:    key,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Files(tx)
		_, err := repo.Create(ctx, file)
		return err
	}); err != nil {
		return nil, fmt.Errorf("error creating file record: %v", err)
	}

	url, err := s.blobs.PresignGet(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error signing download url: %v", err)
	}

	s.hub.Publish(notify.Event{ParticipantID: participantID, Kind: "file", EntityID: file.ID})
	return &FileListing{File: file, URL: url}, nil
}
