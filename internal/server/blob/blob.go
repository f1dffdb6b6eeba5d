// Package blob stores encrypted originals and derived artifacts by key.
package blob

import "context"

// Store is the object storage contract. Get and Delete of a missing key
// yield common.ErrorNotFound and nil respectively.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL a browser can fetch key from.
	PresignGet(ctx context.Context, key string) (string, error)
}

// AssetKey is where the encrypted original of an asset lives.
func AssetKey(ownerID, assetID string) string {
	return "assets/" + ownerID + "/" + assetID + "/original.enc"
}

// SidecarKey is where the chaos-v1 stream sidecar of an asset lives.
func SidecarKey(ownerID, assetID string) string {
	return "assets/" + ownerID + "/" + assetID + "/streams.cbor.zst"
}

// ArtifactKey is where the derived artifact of a grant lives.
func ArtifactKey(grantID string) string {
	return "grants/" + grantID + "/protected.png"
}
