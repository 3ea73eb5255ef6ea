package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/server/models"
	"github.com/dmitrijs2005/clientportal/internal/server/notify"
)

type fakeBlobStore struct {
	putErr     error
	presignErr error
	putKeys    []string
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.putKeys = append(f.putKeys, key)
	return nil
}

func (f *fakeBlobStore) PresignGet(ctx context.Context, key string) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "http://signed/" + key, nil
}

func TestListMessages(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{m: &fakeMessagesRepo{listOut: []*models.Message{
		{ID: "m-1", Content: "hello"},
		{ID: "m-2", Content: "hi"},
	}}}
	s := NewConversationService(db, rm, &fakeBlobStore{}, notify.NewHub())

	got, err := s.ListMessages(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("ListMessages error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m-1" {
		t.Fatalf("unexpected messages: %+v", got)
	}
}

func TestListFiles_SignsEachFile(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{f: &fakeFilesRepo{listOut: []*models.File{
		{ID: "f-1", StorageKey: "k1"},
		{ID: "f-2", StorageKey: "k2"},
	}}}
	s := NewConversationService(db, rm, &fakeBlobStore{}, notify.NewHub())

	got, err := s.ListFiles(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("ListFiles error: %v", err)
	}
	if len(got) != 2 || got[0].URL != "http://signed/k1" || got[1].URL != "http://signed/k2" {
		t.Fatalf("unexpected listings: %+v", got)
	}
}

func TestListFiles_PresignError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{f: &fakeFilesRepo{listOut: []*models.File{{ID: "f-1", StorageKey: "k1"}}}}
	s := NewConversationService(db, rm, &fakeBlobStore{presignErr: errBoom{}}, notify.NewHub())

	if _, err := s.ListFiles(context.Background(), "p-1"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSendMessage_PublishesEvent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hub := notify.NewHub()
	events, cancel := hub.Subscribe("p-1")
	defer cancel()

	repo := &fakeMessagesRepo{}
	rm := &fakeRepoManager{m: repo}
	s := NewConversationService(db, rm, &fakeBlobStore{}, hub)

	msg, err := s.SendMessage(context.Background(), "p-1", "hello", true)
	if err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}
	if msg.ID != "m-1" || !msg.SenderIsClient {
		t.Fatalf("unexpected message: %+v", msg)
	}

	select {
	case ev := <-events:
		if ev.Kind != "message" || ev.EntityID != "m-1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a change event")
	}
}

func TestSendMessage_EmptyContent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{m: &fakeMessagesRepo{}}
	s := NewConversationService(db, rm, &fakeBlobStore{}, notify.NewHub())

	if _, err := s.SendMessage(context.Background(), "p-1", "   ", true); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestSendMessage_RepoError_NoEvent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hub := notify.NewHub()
	events, cancel := hub.Subscribe("p-1")
	defer cancel()

	rm := &fakeRepoManager{m: &fakeMessagesRepo{createErr: errBoom{}}}
	s := NewConversationService(db, rm, &fakeBlobStore{}, hub)

	if _, err := s.SendMessage(context.Background(), "p-1", "hello", true); err == nil {
		t.Fatal("expected error, got nil")
	}

	select {
	case ev := <-events:
		t.Fatalf("unexpected event after failure: %+v", ev)
	default:
	}
}

func TestUploadFile_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	hub := notify.NewHub()
	events, cancel := hub.Subscribe("p-1")
	defer cancel()

	blobs := &fakeBlobStore{}
	filesRepo := &fakeFilesRepo{}
	rm := &fakeRepoManager{f: filesRepo}
	s := NewConversationService(db, rm, blobs, hub)

	listing, err := s.UploadFile(context.Background(), "p-1", "notes.txt", []byte("plain text content"))
	if err != nil {
		t.Fatalf("UploadFile error: %v", err)
	}
	if listing.File.Name != "notes.txt" || listing.File.Size != int64(len("plain text content")) {
		t.Fatalf("unexpected file: %+v", listing.File)
	}
	if listing.URL == "" {
		t.Fatal("expected a download url")
	}
	if len(blobs.putKeys) != 1 {
		t.Fatalf("expected one object upload, got %v", blobs.putKeys)
	}
	if len(filesRepo.created) != 1 {
		t.Fatalf("expected one metadata row, got %d", len(filesRepo.created))
	}

	select {
	case ev := <-events:
		if ev.Kind != "file" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a change event")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUploadFile_BlobError_NoRowNoEvent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hub := notify.NewHub()
	events, cancel := hub.Subscribe("p-1")
	defer cancel()

	filesRepo := &fakeFilesRepo{}
	rm := &fakeRepoManager{f: filesRepo}
	s := NewConversationService(db, rm, &fakeBlobStore{putErr: errors.New("s3 down")}, hub)

	if _, err := s.UploadFile(context.Background(), "p-1", "notes.txt", []byte("x")); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(filesRepo.created) != 0 {
		t.Fatalf("metadata row created despite upload failure: %+v", filesRepo.created)
	}

	select {
	case ev := <-events:
		t.Fatalf("unexpected event after failure: %+v", ev)
	default:
	}
}

func TestUploadFile_EmptyArgs(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewConversationService(db, &fakeRepoManager{}, &fakeBlobStore{}, notify.NewHub())

	if _, err := s.UploadFile(context.Background(), "p-1", "", []byte("x")); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := s.UploadFile(context.Background(), "p-1", "a.txt", nil); err == nil {
		t.Fatal("expected error for empty data")
	}
}
