// Package otps persists one-time code challenges.
package otps

import (
	"context"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.OTPChallenge) error
	// LatestUnused returns the newest unused challenge for (grantID, email)
	// or common.ErrorNotFound.
	LatestUnused(ctx context.Context, grantID, email string) (*models.OTPChallenge, error)
	// Claim marks the challenge used. It reports false if another caller
	// claimed it first.
	Claim(ctx context.Context, id string) (bool, error)
}
