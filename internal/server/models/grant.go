package models

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
)

// Grant is a shareable, constrained access token for one asset.
type Grant struct {
	ID      string
	AssetID string
	OwnerID string
	Token   string
	Name    string

	Features pipeline.Features

	// PasswordHash is empty when no password is required.
	PasswordHash string
	// AllowedEmails are normalized. Empty means open to everyone.
	AllowedEmails []string

	MaxViews     int
	CurrentViews int

	AllowDownload bool
	// ArtifactKey is the blob key of the derived artifact, empty if none.
	ArtifactKey string

	CreatedAt time.Time
}

// IsValid reports whether the grant may still disclose its image.
func (g *Grant) IsValid() bool {
	return g.MaxViews == 0 || g.CurrentViews < g.MaxViews
}

func (g *Grant) RequiresPassword() bool { return g.PasswordHash != "" }

// AllowsEmail reports whether email passes the allow-list.
func (g *Grant) AllowsEmail(email string) bool {
	if len(g.AllowedEmails) == 0 {
		return true
	}
	return slices.Contains(g.AllowedEmails, common.NormalizeEmail(email))
}

// Clone returns a copy that shares no slices with g.
func (g *Grant) Clone() *Grant {
	c := *g
	c.AllowedEmails = slices.Clone(g.AllowedEmails)
	return &c
}
