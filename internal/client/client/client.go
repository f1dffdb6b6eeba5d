package client

import (
	"context"

	"github.com/dmitrijs2005/imagekeeper/internal/client/models"
)

// Client is the owner API as the CLI uses it.
type Client interface {
	Close() error
	Tokens() (access, refresh string)
	SetTokens(access, refresh string)

	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error

	UploadAsset(ctx context.Context, name string, data []byte, algorithm string) (*models.Asset, error)
	ListAssets(ctx context.Context) ([]*models.Asset, error)
	DeleteAsset(ctx context.Context, assetID string) error
	GetSettings(ctx context.Context, assetID string) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s *models.Settings) (*models.Asset, error)

	CreateGrant(ctx context.Context, req *models.GrantRequest) (*models.Grant, error)
	ListGrants(ctx context.Context, assetID string) ([]*models.Grant, error)
	DeleteGrant(ctx context.Context, grantID string) error

	ListAccessRequests(ctx context.Context) ([]*models.AccessRequest, error)
	ReviewAccessRequest(ctx context.Context, requestID, action string) (*models.AccessRequest, error)
	ListAuditLog(ctx context.Context, limit int) ([]*models.AuditEntry, error)

	GetNotificationSettings(ctx context.Context) (*models.NotificationSettings, error)
	UpdateNotificationSettings(ctx context.Context, n *models.NotificationSettings) (*models.NotificationSettings, error)

	// GetMetadata and ExtractHiddenMessage inspect an original when assetID
	// is set or a grant's protected copy when grantID is.
	GetMetadata(ctx context.Context, assetID, grantID string) ([]*models.MetadataTag, error)
	ExtractHiddenMessage(ctx context.Context, assetID, grantID string) (*models.HiddenMessage, error)
}
