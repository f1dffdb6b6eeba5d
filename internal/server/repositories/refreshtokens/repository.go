// Package refreshtokens stores owner refresh tokens. Tokens are addressed
// by their hash (models.HashRefreshToken); callers pass the raw value.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error

	// DeleteExpired prunes the user's sessions that expired before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, userID string, now time.Time) (int64, error)
}
