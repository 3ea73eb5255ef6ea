package conversation

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/client/backend"
	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/google/uuid"
)

// ActionKind distinguishes the two mutating conversation actions.
type ActionKind string

const (
	ActionSendMessage ActionKind = "send-message"
	ActionUploadFile  ActionKind = "upload-file"
)

// ActionStatus is the lifecycle of a PendingAction. Terminal states are
// never re-entered; retrying a failed action means submitting a new one.
type ActionStatus string

const (
	ActionInFlight  ActionStatus = "in-flight"
	ActionSucceeded ActionStatus = "succeeded"
	ActionFailed    ActionStatus = "failed"
)

// PendingAction tracks one submitted action through settlement.
type PendingAction struct {
	LocalID string
	Kind    ActionKind
	Status  ActionStatus
	Err     error
}

// Payload carries the kind-specific action input.
type Payload struct {
	Content  string
	FileName string
	Data     []byte
}

// Coordinator submits mutating actions and reconciles them with the cache.
// A sent message appears optimistically in snapshots until the server
// settles it; an uploaded file never does, because its metadata is
// server-authoritative and not safely guessable client-side.
type Coordinator struct {
	backend backend.Backend
	cache   *Cache
}

func NewCoordinator(b backend.Backend, cache *Cache) *Coordinator {
	return &Coordinator{backend: b, cache: cache}
}

// Submit runs one action to settlement and returns its terminal record.
// On success the key is invalidated so the authoritative record replaces
// any optimistic one on the next fetch. On failure the optimistic entry is
// gone, the error is returned for user-visible reporting, and nothing is
// retried behind the caller's back.
func (c *Coordinator) Submit(ctx context.Context, key string, kind ActionKind, p Payload) (*PendingAction, error) {
	switch kind {
	case ActionSendMessage:
		return c.sendMessage(ctx, key, p.Content)
	case ActionUploadFile:
		return c.uploadFile(ctx, key, p.FileName, p.Data)
	default:
		return nil, fmt.Errorf("unknown action kind: %s", kind)
	}
}

func (c *Coordinator) sendMessage(ctx context.Context, key string, content string) (*PendingAction, error) {

	action := &PendingAction{LocalID: uuid.NewString(), Kind: ActionSendMessage, Status: ActionInFlight}

	c.cache.AppendPending(key, &models.Message{
		ID:             action.LocalID,
		SenderIsClient: true,
		Content:        content,
		CreatedAt:      time.Now(),
		Pending:        true,
	})

	_, err := c.backend.SendMessage(ctx, key, content)

	// The optimistic entry goes away on both outcomes: on success the
	// refetch brings the confirmed record, on failure there is nothing to
	// show.
	c.cache.RemovePending(key, action.LocalID)

	if err != nil {
		action.Status = ActionFailed
		action.Err = err
		return action, err
	}

	action.Status = ActionSucceeded
	c.cache.Invalidate(key)
	return action, nil
}

func (c *Coordinator) uploadFile(ctx context.Context, key string, fileName string, data []byte) (*PendingAction, error) {

	action := &PendingAction{LocalID: uuid.NewString(), Kind: ActionUploadFile, Status: ActionInFlight}

	_, err := c.backend.UploadFile(ctx, key, fileName, data)
	if err != nil {
		action.Status = ActionFailed
		action.Err = err
		return action, err
	}

	action.Status = ActionSucceeded
	c.cache.Invalidate(key)
	return action, nil
}
