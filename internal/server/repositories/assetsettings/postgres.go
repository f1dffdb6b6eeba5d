package assetsettings

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, assetID string) (*models.AssetSettings, error) {
	query := `
		SELECT asset_id, watermark_enabled, watermark, hidden_enabled, hidden_message,
		       metadata_enabled, metadata, ai_protection_enabled, updated_at
		FROM asset_settings
		WHERE asset_id = $1
	`
	s := &models.AssetSettings{}
	var wm, md []byte
	err := r.db.QueryRowContext(ctx, query, assetID).Scan(&s.AssetID, &s.WatermarkEnabled, &wm, &s.HiddenEnabled, &s.HiddenMessage,
		&s.MetadataEnabled, &md, &s.AIProtectionEnabled, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(wm, &s.Watermark); err != nil {
		return nil, fmt.Errorf("decode watermark settings: %w", err)
	}
	if err := json.Unmarshal(md, &s.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata fields: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.AssetSettings) error {
	wm, err := json.Marshal(s.Watermark)
	if err != nil {
		return err
	}
	md, err := json.Marshal(s.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO asset_settings (asset_id, watermark_enabled, watermark, hidden_enabled, hidden_message,
		                            metadata_enabled, metadata, ai_protection_enabled, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (asset_id) DO UPDATE
		SET watermark_enabled = EXCLUDED.watermark_enabled,
		    watermark = EXCLUDED.watermark,
		    hidden_enabled = EXCLUDED.hidden_enabled,
		    hidden_message = EXCLUDED.hidden_message,
		    metadata_enabled = EXCLUDED.metadata_enabled,
		    metadata = EXCLUDED.metadata,
		    ai_protection_enabled = EXCLUDED.ai_protection_enabled,
		    updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.ExecContext(ctx, query, s.AssetID, s.WatermarkEnabled, wm, s.HiddenEnabled, s.HiddenMessage,
		s.MetadataEnabled, md, s.AIProtectionEnabled, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
