package messages

import (
	"context"

	"github.com/dmitrijs2005/clientportal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	ListByParticipant(ctx context.Context, participantID string) ([]*models.Message, error)
}
