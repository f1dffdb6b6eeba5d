// Package grants persists access grants. View counting and allow-list
// growth are single conditional statements so concurrent callers cannot
// overshoot a limit or duplicate an email.
package grants

import (
	"context"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type Repository interface {
	// Create inserts g. A duplicate token yields common.ErrAlreadyExists.
	Create(ctx context.Context, g *models.Grant) error
	GetByID(ctx context.Context, id string) (*models.Grant, error)
	GetByToken(ctx context.Context, token string) (*models.Grant, error)
	ListByAsset(ctx context.Context, ownerID, assetID string) ([]*models.Grant, error)

	// IncrementViews adds one view if the grant is still valid and returns
	// the new count. An exhausted grant yields common.ErrGrantExhausted.
	IncrementViews(ctx context.Context, id string) (int, error)

	// AppendAllowedEmail adds email to the allow-list unless present.
	AppendAllowedEmail(ctx context.Context, id, email string) error

	Delete(ctx context.Context, id string) error
}
