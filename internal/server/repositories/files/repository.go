package files

import (
	"context"

	"github.com/dmitrijs2005/clientportal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, file *models.File) (*models.File, error)
	ListByParticipant(ctx context.Context, participantID string) ([]*models.File, error)
}
