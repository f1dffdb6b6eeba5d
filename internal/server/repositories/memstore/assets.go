package memstore

import (
	"context"
	"slices"
	"sort"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type assetRepo struct {
	s *Store
	h handle
}

func cloneAsset(a *models.Asset) *models.Asset {
	c := *a
	c.WrappedKey = slices.Clone(a.WrappedKey)
	return &c
}

func (r *assetRepo) Create(_ context.Context, a *models.Asset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.assets[a.ID]; ok {
		return common.ErrAlreadyExists
	}
	r.s.assets[a.ID] = cloneAsset(a)
	id := a.ID
	r.h.onUndo(func() { delete(r.s.assets, id) })
	return nil
}

func (r *assetRepo) Get(_ context.Context, id string) (*models.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assets[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneAsset(a), nil
}

func (r *assetRepo) GetForOwner(_ context.Context, ownerID, id string) (*models.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assets[id]
	if !ok || a.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	return cloneAsset(a), nil
}

func (r *assetRepo) ListByOwner(_ context.Context, ownerID string) ([]*models.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*models.Asset
	for _, a := range r.s.assets {
		if a.OwnerID == ownerID {
			result = append(result, cloneAsset(a))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *assetRepo) UpdateFlags(_ context.Context, a *models.Asset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.assets[a.ID]
	if !ok {
		return common.ErrorNotFound
	}
	prev := *cur
	cur.WatermarkEnabled = a.WatermarkEnabled
	cur.HiddenWatermarkEnabled = a.HiddenWatermarkEnabled
	cur.MetadataEnabled = a.MetadataEnabled
	cur.AIProtectionEnabled = a.AIProtectionEnabled
	r.h.onUndo(func() { *cur = prev })
	return nil
}

// Delete cascades to the asset's settings and grants like the foreign keys
// of the SQL schema do.
func (r *assetRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assets[id]
	if !ok {
		return nil
	}
	delete(r.s.assets, id)
	r.h.onUndo(func() { r.s.assets[id] = a })

	if st, ok := r.s.settings[id]; ok {
		delete(r.s.settings, id)
		r.h.onUndo(func() { r.s.settings[id] = st })
	}
	for gid, g := range r.s.grants {
		if g.AssetID == id {
			r.s.deleteGrantLocked(r.h, gid)
		}
	}
	return nil
}

type settingsRepo struct {
	s *Store
	h handle
}

func (r *settingsRepo) Get(_ context.Context, assetID string) (*models.AssetSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.settings[assetID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *st
	return &c, nil
}

func (r *settingsRepo) Upsert(_ context.Context, st *models.AssetSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := st.AssetID
	prev, had := r.s.settings[id]
	c := *st
	r.s.settings[id] = &c
	r.h.onUndo(func() {
		if had {
			r.s.settings[id] = prev
		} else {
			delete(r.s.settings, id)
		}
	})
	return nil
}
