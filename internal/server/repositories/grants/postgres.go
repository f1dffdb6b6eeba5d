package grants

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

const columns = `id, asset_id, owner_id, token, name, features, password_hash, allowed_emails,
	max_views, current_views, allow_download, artifact_key, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGrant(row scanner) (*models.Grant, error) {
	g := &models.Grant{}
	var features, emails []byte
	err := row.Scan(&g.ID, &g.AssetID, &g.OwnerID, &g.Token, &g.Name, &features, &g.PasswordHash, &emails,
		&g.MaxViews, &g.CurrentViews, &g.AllowDownload, &g.ArtifactKey, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(features, &g.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	if err := json.Unmarshal(emails, &g.AllowedEmails); err != nil {
		return nil, fmt.Errorf("decode allowed emails: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) Create(ctx context.Context, g *models.Grant) error {
	features, err := json.Marshal(g.Features)
	if err != nil {
		return err
	}
	emails := g.AllowedEmails
	if emails == nil {
		emails = []string{}
	}
	emailsJSON, err := json.Marshal(emails)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO grants (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.ExecContext(ctx, query, g.ID, g.AssetID, g.OwnerID, g.Token, g.Name, features, g.PasswordHash, emailsJSON,
		g.MaxViews, g.CurrentViews, g.AllowDownload, g.ArtifactKey, g.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Grant, error) {
	return r.one(ctx, `SELECT `+columns+` FROM grants WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.Grant, error) {
	return r.one(ctx, `SELECT `+columns+` FROM grants WHERE token = $1`, token)
}

func (r *PostgresRepository) one(ctx context.Context, query string, arg string) (*models.Grant, error) {
	g, err := scanGrant(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) ListByAsset(ctx context.Context, ownerID, assetID string) ([]*models.Grant, error) {
	query := `SELECT ` + columns + ` FROM grants WHERE owner_id = $1 AND asset_id = $2 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID, assetID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Grant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	query := `
		UPDATE grants SET current_views = current_views + 1
		WHERE id = $1 AND (max_views = 0 OR current_views < max_views)
		RETURNING current_views
	`
	var views int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&views); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrGrantExhausted
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return views, nil
}

func (r *PostgresRepository) AppendAllowedEmail(ctx context.Context, id, email string) error {
	query := `
		UPDATE grants SET allowed_emails = allowed_emails || jsonb_build_array($2::text)
		WHERE id = $1 AND NOT (allowed_emails @> jsonb_build_array($2::text))
	`
	if _, err := r.db.ExecContext(ctx, query, id, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM grants WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
