// Package notifications stores per-owner mail preferences.
package notifications

import (
	"context"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when the owner never saved settings.
	Get(ctx context.Context, userID string) (*models.NotificationSettings, error)
	Upsert(ctx context.Context, s *models.NotificationSettings) error
}
