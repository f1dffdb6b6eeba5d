package otps

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

func (r *PostgresRepository) Create(ctx context.Context, c *models.OTPChallenge) error {
	query := `
		INSERT INTO otp_challenges (id, grant_id, email, secret, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.GrantID, c.Email, c.Secret, c.Used, c.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) LatestUnused(ctx context.Context, grantID, email string) (*models.OTPChallenge, error) {
	query := `
		SELECT id, grant_id, email, secret, used, created_at
		FROM otp_challenges
		WHERE grant_id = $1 AND email = $2 AND NOT used
		ORDER BY created_at DESC
		LIMIT 1
	`
	c := &models.OTPChallenge{}
	err := r.db.QueryRowContext(ctx, query, grantID, email).Scan(&c.ID, &c.GrantID, &c.Email, &c.Secret, &c.Used, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Claim(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE otp_challenges SET used = true WHERE id = $1 AND NOT used`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}
