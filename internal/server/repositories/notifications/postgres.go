package notifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	query := `
		SELECT user_id, access_requests, downloads
		FROM notification_settings
		WHERE user_id = $1
	`
	s := &models.NotificationSettings{}
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.AccessRequests, &s.Downloads); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.NotificationSettings) error {
	query := `
		INSERT INTO notification_settings (user_id, access_requests, downloads)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET access_requests = EXCLUDED.access_requests, downloads = EXCLUDED.downloads
	`
	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.AccessRequests, s.Downloads); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
