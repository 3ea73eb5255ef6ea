// Package backend defines the client's view of the portal data service and
// its gRPC implementation. Every other client component talks to the server
// exclusively through the Backend interface, which keeps the core logic
// testable with in-memory fakes.
package backend

import (
	"context"

	"github.com/dmitrijs2005/clientportal/internal/client/models"
)

// ChangeEvent is a server-pushed invalidation signal for one conversation.
// The payload is opaque to the listener; any event means "refetch".
type ChangeEvent struct {
	ParticipantID string
	Kind          string
	EntityID      string
}

// ChangeSubscription is one live change-notification stream. Recv blocks
// until the next event or a stream error; Close tears the stream down and
// unblocks a pending Recv.
type ChangeSubscription interface {
	Recv() (*ChangeEvent, error)
	Close()
}

// Backend is the portal data service as seen from the client.
type Backend interface {
	Register(ctx context.Context, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) error
	FetchIdentity(ctx context.Context) (*models.Identity, error)

	FetchOnboardingStatus(ctx context.Context, identityID string) (*models.OnboardingStatus, error)
	CompleteOnboarding(ctx context.Context, identityID, companyName, companyVatID, companyAddress string) error

	ListMessages(ctx context.Context, participantID string) ([]*models.Message, error)
	ListFiles(ctx context.Context, participantID string) ([]*models.FileRecord, error)
	SendMessage(ctx context.Context, participantID, content string) (*models.Message, error)
	UploadFile(ctx context.Context, participantID, fileName string, data []byte) (*models.FileRecord, error)
	SubscribeChanges(ctx context.Context, participantID string) (ChangeSubscription, error)

	// Token pair management, used by the session to persist and restore
	// credentials across restarts. OnTokensChanged fires whenever the
	// server issues a new pair (sign-in or refresh rotation); SetTokens
	// installs a pair silently.
	Tokens() (accessToken string, refreshToken string)
	SetTokens(accessToken string, refreshToken string)
	OnTokensChanged(fn func(accessToken, refreshToken string))

	Close() error
}
