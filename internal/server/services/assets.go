package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/imagekeeper/internal/chaos"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/cryptox"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/repomanager"
)

const maxAssetNameLen = 255

// AssetService stores encrypted originals and opens them again.
type AssetService struct {
	runner      dbx.Runner
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	masterKey   []byte
	defaultAlgo string
	logger      logging.Logger
}

func NewAssetService(r dbx.Runner, m repomanager.RepositoryManager, blobs blob.Store, masterKey []byte, defaultAlgo string, l logging.Logger) *AssetService {
	if defaultAlgo == "" {
		defaultAlgo = models.AlgoAESCBCHMAC
	}
	return &AssetService{
		runner:      r,
		repomanager: m,
		blobs:       blobs,
		masterKey:   masterKey,
		defaultAlgo: defaultAlgo,
		logger:      l.With("module", "assets"),
	}
}

// Upload validates data as an image, encrypts it under a fresh per-asset key
// and records the asset. An empty algorithm selects the configured default.
func (s *AssetService) Upload(ctx context.Context, ownerID, name string, data []byte, algorithm string) (*models.Asset, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxAssetNameLen {
		return nil, fmt.Errorf("%w: name must be 1-%d characters", common.ErrValidation, maxAssetNameLen)
	}
	if algorithm == "" {
		algorithm = s.defaultAlgo
	}

	img, _, err := raster.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	a := &models.Asset{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Algorithm: algorithm,
		Size:      int64(len(data)),
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		CreatedAt: time.Now(),
	}
	a.StorageKey = blob.AssetKey(ownerID, a.ID)

	key, err := cryptox.NewAssetKey(ownerID, a.ID)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	if a.WrappedKey, err = cryptox.WrapKey(key, s.masterKey); err != nil {
		return nil, err
	}

	switch algorithm {
	case models.AlgoAESCBC, models.AlgoAESCBCHMAC:
		ct, err := encryptBytes(algorithm, data, key)
		if err != nil {
			return nil, err
		}
		if err := s.blobs.Put(ctx, a.StorageKey, ct, "application/octet-stream"); err != nil {
			return nil, err
		}
	case models.AlgoChaos:
		a.SidecarKey = blob.SidecarKey(ownerID, a.ID)
		if err := s.putChaos(ctx, a, img, key); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedAlgo, algorithm)
	}

	err = s.runner.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Assets(tx).Create(ctx, a); err != nil {
			return err
		}
		return s.repomanager.AssetSettings(tx).Upsert(ctx, models.DefaultAssetSettings(a.ID))
	})
	if err != nil {
		s.deleteBlobs(ctx, a.StorageKey, a.SidecarKey)
		return nil, err
	}

	s.logger.Info(ctx, "asset uploaded", "asset_id", a.ID, "algorithm", algorithm, "size", a.Size)
	return a, nil
}

// putChaos stores the scrambled planes as PNG and the sealed stream sidecar.
func (s *AssetService) putChaos(ctx context.Context, a *models.Asset, img image.Image, key []byte) error {
	planes, streams := chaos.EncryptPlanes(raster.Split(img), hex.EncodeToString(key))
	scrambled, err := raster.Merge(planes)
	if err != nil {
		return err
	}
	pngData, err := raster.EncodePNG(scrambled)
	if err != nil {
		return err
	}
	sidecar, err := chaos.MarshalStreams(streams)
	if err != nil {
		return err
	}
	sealed, err := cryptox.Seal(sidecar, key)
	if err != nil {
		return err
	}
	if err := s.blobs.Put(ctx, a.StorageKey, pngData, "image/png"); err != nil {
		return err
	}
	return s.blobs.Put(ctx, a.SidecarKey, sealed, "application/octet-stream")
}

// Open decrypts the asset and returns the original bytes with their content
// type. Chaos assets come back as PNG.
func (s *AssetService) Open(ctx context.Context, a *models.Asset) ([]byte, string, error) {
	key, err := cryptox.UnwrapKey(a.WrappedKey, s.masterKey)
	if err != nil {
		return nil, "", err
	}
	defer common.WipeByteArray(key)

	stored, err := s.blobs.Get(ctx, a.StorageKey)
	if err != nil {
		return nil, "", err
	}

	switch a.Algorithm {
	case models.AlgoAESCBC, models.AlgoAESCBCHMAC:
		pt, err := decryptBytes(a.Algorithm, stored, key)
		if err != nil {
			return nil, "", err
		}
		return pt, http.DetectContentType(pt), nil
	case models.AlgoChaos:
		img, err := s.openChaos(ctx, a, stored, key)
		if err != nil {
			return nil, "", err
		}
		data, err := raster.EncodePNG(img)
		return data, "image/png", err
	default:
		return nil, "", fmt.Errorf("%w: %q", common.ErrUnsupportedAlgo, a.Algorithm)
	}
}

// OpenImage is Open followed by decoding.
func (s *AssetService) OpenImage(ctx context.Context, a *models.Asset) (image.Image, error) {
	data, _, err := s.Open(ctx, a)
	if err != nil {
		return nil, err
	}
	img, _, err := raster.Decode(data)
	return img, err
}

func (s *AssetService) openChaos(ctx context.Context, a *models.Asset, stored, key []byte) (image.Image, error) {
	sealed, err := s.blobs.Get(ctx, a.SidecarKey)
	if err != nil {
		return nil, err
	}
	sidecar, err := cryptox.Open(sealed, key)
	if err != nil {
		return nil, err
	}
	streams, err := chaos.UnmarshalStreams(sidecar)
	if err != nil {
		return nil, err
	}
	scrambled, _, err := raster.Decode(stored)
	if err != nil {
		return nil, err
	}
	planes, err := chaos.DecryptPlanes(raster.Split(scrambled), streams)
	if err != nil {
		return nil, err
	}
	return raster.Merge(planes)
}

func (s *AssetService) Get(ctx context.Context, ownerID, id string) (*models.Asset, error) {
	return s.repomanager.Assets(s.runner.Conn()).GetForOwner(ctx, ownerID, id)
}

func (s *AssetService) List(ctx context.Context, ownerID string) ([]*models.Asset, error) {
	return s.repomanager.Assets(s.runner.Conn()).ListByOwner(ctx, ownerID)
}

// Delete removes the asset with its grants. Audit history of those grants
// is snapshotted first, the same way GrantService.Delete does it.
func (s *AssetService) Delete(ctx context.Context, ownerID, id string) error {
	a, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}

	var artifacts []string
	err = s.runner.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		grants, err := s.repomanager.Grants(tx).ListByAsset(ctx, ownerID, id)
		if err != nil {
			return err
		}
		for _, g := range grants {
			if _, err := s.repomanager.AuditLog(tx).SnapshotGrant(ctx, g.ID, snapshotOf(g, a)); err != nil {
				return err
			}
			if g.ArtifactKey != "" {
				artifacts = append(artifacts, g.ArtifactKey)
			}
		}
		return s.repomanager.Assets(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.deleteBlobs(ctx, append(artifacts, a.StorageKey, a.SidecarKey)...)
	s.logger.Info(ctx, "asset deleted", "asset_id", id, "grants", len(artifacts))
	return nil
}

// deleteBlobs is best effort; orphaned blobs are logged.
func (s *AssetService) deleteBlobs(ctx context.Context, keys ...string) {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if err := s.blobs.Delete(ctx, k); err != nil && !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "blob delete failed", "key", k, "error", err)
		}
	}
}

func encryptBytes(algorithm string, data, key []byte) ([]byte, error) {
	if algorithm == models.AlgoAESCBC {
		return cryptox.EncryptCBC(data, key)
	}
	return cryptox.Seal(data, key)
}

func decryptBytes(algorithm string, data, key []byte) ([]byte, error) {
	if algorithm == models.AlgoAESCBC {
		return cryptox.DecryptCBC(data, key)
	}
	return cryptox.Open(data, key)
}

func snapshotOf(g *models.Grant, a *models.Asset) models.GrantSnapshot {
	snap := models.GrantSnapshot{
		GrantToken: g.Token,
		GrantName:  g.Name,
		AssetID:    g.AssetID,
		OwnerID:    g.OwnerID,
	}
	if a != nil {
		snap.AssetName = a.Name
	}
	return snap
}
