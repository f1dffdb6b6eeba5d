// Package auditlog is the append-only record of access attempts, views and
// downloads. Entries are never changed except by SnapshotGrant, which runs
// right before a grant is deleted.
package auditlog

import (
	"context"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, e *models.AuditEntry) error
	// SnapshotGrant copies the grant's identity into every entry that
	// references grantID and returns how many were rewritten.
	SnapshotGrant(ctx context.Context, grantID string, snap models.GrantSnapshot) (int64, error)
	// ListByOwner returns the newest entries for the owner's grants, live
	// or deleted.
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.AuditEntry, error)
}
