package files

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clientportal/internal/dbx"
	"github.com/dmitrijs2005/clientportal/internal/server/models"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). The file bytes themselves live in object storage.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a metadata row and fills in the server-assigned id and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {
	query := `
		INSERT INTO files (participant_id, name, size, content_type, storage_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		file.ParticipantID, file.Name, file.Size, file.ContentType, file.StorageKey).
		Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// ListByParticipant returns the participant's files ordered oldest first.
func (r *PostgresRepository) ListByParticipant(ctx context.Context, participantID string) ([]*models.File, error) {
	query := `
		SELECT id, participant_id, name, size, content_type, storage_key, created_at
		FROM files
		WHERE participant_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.File
	for rows.Next() {
		var item models.File
		if err := rows.Scan(&item.ID, &item.ParticipantID, &item.Name, &item.Size,
			&item.ContentType, &item.StorageKey, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
