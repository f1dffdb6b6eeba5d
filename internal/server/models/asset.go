// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/metadata"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"
)

// Stored cipher algorithm identifiers.
const (
	AlgoAESCBC     = "aes-256-cbc"
	AlgoAESCBCHMAC = "aes-256-cbc-hmac"
	AlgoChaos      = "chaos-v1"
)

// Asset is an encrypted original image.
type Asset struct {
	ID      string
	OwnerID string
	Name    string

	// Algorithm selects how the blob at StorageKey is decrypted.
	Algorithm string
	// WrappedKey is the per-asset key sealed under the server master key.
	WrappedKey []byte
	StorageKey string
	// SidecarKey points at the chaos-v1 stream sidecar. Empty otherwise.
	SidecarKey string

	Size   int64
	Width  int
	Height int

	WatermarkEnabled       bool
	HiddenWatermarkEnabled bool
	MetadataEnabled        bool
	AIProtectionEnabled    bool

	CreatedAt time.Time
}

// AssetSettings is the owner's protection configuration for one asset.
type AssetSettings struct {
	AssetID string

	WatermarkEnabled bool
	Watermark        watermark.Settings

	HiddenEnabled bool
	HiddenMessage string

	MetadataEnabled bool
	Metadata        metadata.Fields

	AIProtectionEnabled bool

	UpdatedAt time.Time
}

// DefaultAssetSettings returns disabled features with default watermark styling.
func DefaultAssetSettings(assetID string) *AssetSettings {
	return &AssetSettings{AssetID: assetID, Watermark: watermark.DefaultSettings()}
}
