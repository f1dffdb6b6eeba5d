// Package assets persists encrypted original images and their derived
// protection flags.
package assets

import (
	"context"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Asset) error
	Get(ctx context.Context, id string) (*models.Asset, error)
	// GetForOwner returns common.ErrorNotFound for assets of other owners.
	GetForOwner(ctx context.Context, ownerID, id string) (*models.Asset, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Asset, error)
	// UpdateFlags persists the four feature flags of a.
	UpdateFlags(ctx context.Context, a *models.Asset) error
	Delete(ctx context.Context, id string) error
}
