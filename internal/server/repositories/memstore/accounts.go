package memstore

import (
	"context"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/google/uuid"
)

type userRepo struct {
	s *Store
	h handle
}

func (r *userRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return nil, common.ErrAlreadyExists
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	c := *u
	r.s.users[u.ID] = &c
	r.h.onUndo(func() { delete(r.s.users, c.ID) })
	return u, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

type refreshRepo struct {
	s *Store
	h handle
}

func (r *refreshRepo) Create(_ context.Context, userID string, token string, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := models.HashRefreshToken(token)
	r.s.refreshTokens[key] = &models.RefreshToken{
		ID: uuid.NewString(), UserID: userID, TokenHash: key, ExpiresAt: expiresAt, CreatedAt: time.Now(),
	}
	r.h.onUndo(func() { delete(r.s.refreshTokens, key) })
	return nil
}

func (r *refreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.refreshTokens[models.HashRefreshToken(token)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (r *refreshRepo) Delete(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.remove(models.HashRefreshToken(token))
	return nil
}

func (r *refreshRepo) DeleteExpired(_ context.Context, userID string, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for key, t := range r.s.refreshTokens {
		if t.UserID == userID && t.Expired(now) {
			r.remove(key)
			n++
		}
	}
	return n, nil
}

// remove must be called with the lock held.
func (r *refreshRepo) remove(key string) {
	if prev, ok := r.s.refreshTokens[key]; ok {
		delete(r.s.refreshTokens, key)
		r.h.onUndo(func() { r.s.refreshTokens[key] = prev })
	}
}

type notificationRepo struct {
	s *Store
	h handle
}

func (r *notificationRepo) Get(_ context.Context, userID string) (*models.NotificationSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *n
	return &c, nil
}

func (r *notificationRepo) Upsert(_ context.Context, n *models.NotificationSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, had := r.s.notifications[n.UserID]
	c := *n
	r.s.notifications[n.UserID] = &c
	r.h.onUndo(func() {
		if had {
			r.s.notifications[c.UserID] = prev
		} else {
			delete(r.s.notifications, c.UserID)
		}
	})
	return nil
}
