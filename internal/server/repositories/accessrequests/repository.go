// Package accessrequests persists requests to join a grant's allow-list.
package accessrequests

import (
	"context"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type Repository interface {
	// Create inserts r. A second request for the same (grant, email)
	// yields common.ErrAlreadyExists.
	Create(ctx context.Context, r *models.AccessRequest) error
	// Find returns the request for (grantID, email) or common.ErrorNotFound.
	Find(ctx context.Context, grantID, email string) (*models.AccessRequest, error)
	GetByID(ctx context.Context, id string) (*models.AccessRequest, error)
	// Update writes status, message and updated_at.
	Update(ctx context.Context, r *models.AccessRequest) error
	// ListPendingByOwner returns pending requests on the owner's grants,
	// newest first.
	ListPendingByOwner(ctx context.Context, ownerID string) ([]*models.AccessRequest, error)
}
