package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

const columns = `id, owner_id, name, algorithm, wrapped_key, storage_key, sidecar_key, size, width, height,
	watermark_enabled, hidden_watermark_enabled, metadata_enabled, ai_protection_enabled, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(row scanner) (*models.Asset, error) {
	a := &models.Asset{}
	err := row.Scan(&a.ID, &a.OwnerID, &a.Name, &a.Algorithm, &a.WrappedKey, &a.StorageKey, &a.SidecarKey,
		&a.Size, &a.Width, &a.Height,
		&a.WatermarkEnabled, &a.HiddenWatermarkEnabled, &a.MetadataEnabled, &a.AIProtectionEnabled, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Asset) error {
	query := `
		INSERT INTO assets (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.OwnerID, a.Name, a.Algorithm, a.WrappedKey, a.StorageKey, a.SidecarKey,
		a.Size, a.Width, a.Height,
		a.WatermarkEnabled, a.HiddenWatermarkEnabled, a.MetadataEnabled, a.AIProtectionEnabled, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Asset, error) {
	query := `SELECT ` + columns + ` FROM assets WHERE id = $1`
	return r.one(ctx, query, id)
}

func (r *PostgresRepository) GetForOwner(ctx context.Context, ownerID, id string) (*models.Asset, error) {
	query := `SELECT ` + columns + ` FROM assets WHERE id = $1 AND owner_id = $2`
	return r.one(ctx, query, id, ownerID)
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Asset, error) {
	a, err := scanAsset(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Asset, error) {
	query := `SELECT ` + columns + ` FROM assets WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateFlags(ctx context.Context, a *models.Asset) error {
	query := `
		UPDATE assets
		SET watermark_enabled = $2, hidden_watermark_enabled = $3, metadata_enabled = $4, ai_protection_enabled = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, a.ID, a.WatermarkEnabled, a.HiddenWatermarkEnabled, a.MetadataEnabled, a.AIProtectionEnabled)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
