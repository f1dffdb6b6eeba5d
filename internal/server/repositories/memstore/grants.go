package memstore

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type grantRepo struct {
	s *Store
	h handle
}

func (r *grantRepo) Create(_ context.Context, g *models.Grant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.grants {
		if existing.ID == g.ID || existing.Token == g.Token {
			return common.ErrAlreadyExists
		}
	}
	r.s.grants[g.ID] = g.Clone()
	id := g.ID
	r.h.onUndo(func() { delete(r.s.grants, id) })
	return nil
}

func (r *grantRepo) GetByID(_ context.Context, id string) (*models.Grant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.grants[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return g.Clone(), nil
}

func (r *grantRepo) GetByToken(_ context.Context, token string) (*models.Grant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.grants {
		if g.Token == token {
			return g.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *grantRepo) ListByAsset(_ context.Context, ownerID, assetID string) ([]*models.Grant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*models.Grant
	for _, g := range r.s.grants {
		if g.OwnerID == ownerID && g.AssetID == assetID {
			result = append(result, g.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *grantRepo) IncrementViews(_ context.Context, id string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.grants[id]
	if !ok || !g.IsValid() {
		return 0, common.ErrGrantExhausted
	}
	g.CurrentViews++
	r.h.onUndo(func() { g.CurrentViews-- })
	return g.CurrentViews, nil
}

func (r *grantRepo) AppendAllowedEmail(_ context.Context, id, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.grants[id]
	if !ok || slices.Contains(g.AllowedEmails, email) {
		return nil
	}
	prev := g.AllowedEmails
	g.AllowedEmails = append(slices.Clone(prev), email)
	r.h.onUndo(func() { g.AllowedEmails = prev })
	return nil
}

func (r *grantRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteGrantLocked(r.h, id)
	return nil
}

// deleteGrantLocked removes the grant with its challenges and requests and
// detaches audit entries from it. Callers hold s.mu.
func (s *Store) deleteGrantLocked(h handle, id string) {
	g, ok := s.grants[id]
	if !ok {
		return
	}
	delete(s.grants, id)
	h.onUndo(func() { s.grants[id] = g })

	otps := s.otps
	s.otps = slices.DeleteFunc(slices.Clone(otps), func(c *models.OTPChallenge) bool { return c.GrantID == id })
	h.onUndo(func() { s.otps = otps })

	for rid, req := range s.requests {
		if req.GrantID == id {
			delete(s.requests, rid)
			h.onUndo(func() { s.requests[rid] = req })
		}
	}
	for _, e := range s.audit {
		if e.GrantID == id {
			e.GrantID = ""
			h.onUndo(func() { e.GrantID = id })
		}
	}
}

type otpRepo struct {
	s *Store
	h handle
}

func (r *otpRepo) Create(_ context.Context, c *models.OTPChallenge) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	prev := r.s.otps
	r.s.otps = append(slices.Clone(prev), &cp)
	r.h.onUndo(func() { r.s.otps = prev })
	return nil
}

func (r *otpRepo) LatestUnused(_ context.Context, grantID, email string) (*models.OTPChallenge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var latest *models.OTPChallenge
	for _, c := range r.s.otps {
		if c.GrantID != grantID || c.Email != email || c.Used {
			continue
		}
		if latest == nil || !c.CreatedAt.Before(latest.CreatedAt) {
			latest = c
		}
	}
	if latest == nil {
		return nil, common.ErrorNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *otpRepo) Claim(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.otps {
		if c.ID == id && !c.Used {
			c.Used = true
			r.h.onUndo(func() { c.Used = false })
			return true, nil
		}
	}
	return false, nil
}

type requestRepo struct {
	s *Store
	h handle
}

func (r *requestRepo) Create(_ context.Context, req *models.AccessRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.requests {
		if existing.GrantID == req.GrantID && existing.Email == req.Email {
			return common.ErrAlreadyExists
		}
	}
	c := *req
	c.GrantName = ""
	r.s.requests[req.ID] = &c
	id := req.ID
	r.h.onUndo(func() { delete(r.s.requests, id) })
	return nil
}

func (r *requestRepo) Find(_ context.Context, grantID, email string) (*models.AccessRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, req := range r.s.requests {
		if req.GrantID == grantID && req.Email == email {
			c := *req
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *requestRepo) GetByID(_ context.Context, id string) (*models.AccessRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *req
	return &c, nil
}

func (r *requestRepo) Update(_ context.Context, req *models.AccessRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.requests[req.ID]
	if !ok {
		return common.ErrorNotFound
	}
	prev := *cur
	cur.Status = req.Status
	cur.Message = req.Message
	cur.UpdatedAt = req.UpdatedAt
	if cur.UpdatedAt.IsZero() {
		cur.UpdatedAt = time.Now()
	}
	r.h.onUndo(func() { *cur = prev })
	return nil
}

func (r *requestRepo) ListPendingByOwner(_ context.Context, ownerID string) ([]*models.AccessRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*models.AccessRequest
	for _, req := range r.s.requests {
		g, ok := r.s.grants[req.GrantID]
		if !ok || g.OwnerID != ownerID || req.Status != models.RequestPending {
			continue
		}
		c := *req
		c.GrantName = g.Name
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}
