package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// RefreshToken is a stored owner session. Only the SHA-256 of the opaque
// token is persisted, so a database dump cannot be replayed.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// HashRefreshToken is the lookup key for token.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
