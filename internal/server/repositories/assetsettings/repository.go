// Package assetsettings persists the typed protection settings row of an
// asset.
package assetsettings

import (
	"context"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when nothing was saved yet.
	Get(ctx context.Context, assetID string) (*models.AssetSettings, error)
	Upsert(ctx context.Context, s *models.AssetSettings) error
}
