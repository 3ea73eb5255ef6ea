package messages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clientportal/internal/dbx"
	"github.com/dmitrijs2005/clientportal/internal/server/models"
)

// PostgresRepository implements conversation message storage over a
// dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a message and fills in its server-assigned id and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (participant_id, sender_is_client, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		message.ParticipantID, message.SenderIsClient, message.Content).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return message, nil
}

// ListByParticipant returns the participant's full thread ordered oldest first.
func (r *PostgresRepository) ListByParticipant(ctx context.Context, participantID string) ([]*models.Message, error) {
	query := `
		SELECT id, participant_id, sender_is_client, content, created_at
		FROM messages
		WHERE participant_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		var item models.Message
		if err := rows.Scan(&item.ID, &item.ParticipantID, &item.SenderIsClient, &item.Content, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
