package memstore

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type auditRepo struct {
	s *Store
	h handle
}

func (r *auditRepo) Append(_ context.Context, e *models.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *e
	n := len(r.s.audit)
	r.s.audit = append(r.s.audit, &c)
	r.h.onUndo(func() { r.s.audit = r.s.audit[:n] })
	return nil
}

func (r *auditRepo) SnapshotGrant(_ context.Context, grantID string, snap models.GrantSnapshot) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, e := range r.s.audit {
		if e.GrantID != grantID {
			continue
		}
		prev := e.GrantSnapshot
		e.GrantSnapshot = snap
		r.h.onUndo(func() { e.GrantSnapshot = prev })
		n++
	}
	return n, nil
}

// ListByOwner resolves live grants the way the SQL join does and falls back
// to the stored snapshot for deleted ones. Entries with equal timestamps
// come back in reverse insertion order.
func (r *auditRepo) ListByOwner(_ context.Context, ownerID string, limit int) ([]*models.AuditEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*models.AuditEntry
	for i := len(r.s.audit) - 1; i >= 0; i-- {
		e := r.s.audit[i]
		c := *e
		if g, ok := r.s.grants[e.GrantID]; ok && e.GrantID != "" {
			c.GrantToken = g.Token
			c.GrantName = g.Name
			c.AssetID = g.AssetID
			c.OwnerID = g.OwnerID
			if a, ok := r.s.assets[g.AssetID]; ok {
				c.AssetName = a.Name
			}
		}
		if c.OwnerID == ownerID {
			result = append(result, &c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
