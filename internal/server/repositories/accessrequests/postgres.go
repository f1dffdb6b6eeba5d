package accessrequests

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

func (r *PostgresRepository) Create(ctx context.Context, req *models.AccessRequest) error {
	query := `
		INSERT INTO access_requests (id, grant_id, email, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query, req.ID, req.GrantID, req.Email, req.Message, req.Status, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, grantID, email string) (*models.AccessRequest, error) {
	query := `
		SELECT id, grant_id, email, message, status, created_at, updated_at
		FROM access_requests
		WHERE grant_id = $1 AND email = $2
	`
	return r.one(ctx, query, grantID, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.AccessRequest, error) {
	query := `
		SELECT id, grant_id, email, message, status, created_at, updated_at
		FROM access_requests
		WHERE id = $1
	`
	return r.one(ctx, query, id)
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.AccessRequest, error) {
	req := &models.AccessRequest{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&req.ID, &req.GrantID, &req.Email, &req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return req, nil
}

func (r *PostgresRepository) Update(ctx context.Context, req *models.AccessRequest) error {
	query := `
		UPDATE access_requests SET status = $2, message = $3, updated_at = $4
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, req.ID, req.Status, req.Message, req.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListPendingByOwner(ctx context.Context, ownerID string) ([]*models.AccessRequest, error) {
	query := `
		SELECT r.id, r.grant_id, r.email, r.message, r.status, r.created_at, r.updated_at, g.name
		FROM access_requests r
		JOIN grants g ON g.id = r.grant_id
		WHERE g.owner_id = $1 AND r.status = 'pending'
		ORDER BY r.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.AccessRequest
	for rows.Next() {
		req := &models.AccessRequest{}
		if err := rows.Scan(&req.ID, &req.GrantID, &req.Email, &req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt, &req.GrantName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
