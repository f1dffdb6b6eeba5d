package services

import (
	"context"
	"fmt"
	"image"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/cryptox"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/repomanager"
)

const (
	maxGrantNameLen      = 50
	minGrantPasswordLen  = 6
	grantTokenRandomSize = 32
)

// ArtifactBuilder derives the protected image of a grant.
type ArtifactBuilder interface {
	Run(ctx context.Context, img image.Image, f pipeline.Features, s pipeline.Settings) (*pipeline.Artifact, error)
}

// GrantInput is what an owner supplies when sharing an asset.
type GrantInput struct {
	Name          string
	Password      string
	AllowedEmails []string
	MaxViews      int
	AllowDownload bool
	Features      pipeline.Features
}

type GrantService struct {
	runner      dbx.Runner
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	assets      *AssetService
	builder     ArtifactBuilder
	logger      logging.Logger
}

func NewGrantService(r dbx.Runner, m repomanager.RepositoryManager, blobs blob.Store, assets *AssetService, b ArtifactBuilder, l logging.Logger) *GrantService {
	return &GrantService{
		runner:      r,
		repomanager: m,
		blobs:       blobs,
		assets:      assets,
		builder:     b,
		logger:      l.With("module", "grants"),
	}
}

// Create validates in, materializes the protected artifact when any feature
// is requested and stores the grant.
func (s *GrantService) Create(ctx context.Context, ownerID, assetID string, in GrantInput) (*models.Grant, error) {
	a, err := s.repomanager.Assets(s.runner.Conn()).GetForOwner(ctx, ownerID, assetID)
	if err != nil {
		return nil, err
	}
	if err := validateGrantInput(a, in); err != nil {
		return nil, err
	}

	token, err := common.MakeRandHexString(grantTokenRandomSize)
	if err != nil {
		return nil, common.ErrorInternal
	}

	g := &models.Grant{
		ID:            uuid.NewString(),
		AssetID:       a.ID,
		OwnerID:       ownerID,
		Token:         token,
		Name:          in.Name,
		Features:      in.Features,
		AllowedEmails: normalizeEmails(in.AllowedEmails),
		MaxViews:      in.MaxViews,
		AllowDownload: in.AllowDownload,
		CreatedAt:     time.Now(),
	}
	if in.Password != "" {
		g.PasswordHash = cryptox.HashPassword(in.Password)
	}

	if in.Features.Any() {
		if err := s.materialize(ctx, a, g); err != nil {
			return nil, err
		}
	}

	if err := s.repomanager.Grants(s.runner.Conn()).Create(ctx, g); err != nil {
		s.assets.deleteBlobs(ctx, g.ArtifactKey)
		return nil, err
	}

	s.logger.Info(ctx, "grant created", "grant_id", g.ID, "asset_id", a.ID, "features", g.Features)
	return g, nil
}

func (s *GrantService) materialize(ctx context.Context, a *models.Asset, g *models.Grant) error {
	img, err := s.assets.OpenImage(ctx, a)
	if err != nil {
		return err
	}
	st, err := loadSettings(ctx, s.repomanager, s.runner.Conn(), a.ID)
	if err != nil {
		return err
	}

	art, err := s.builder.Run(ctx, img, g.Features, pipeline.Settings{
		Watermark:     st.Watermark,
		HiddenMessage: st.HiddenMessage,
		Metadata:      st.Metadata,
	})
	if err != nil {
		return err
	}

	key := blob.ArtifactKey(g.ID)
	if err := s.blobs.Put(ctx, key, art.Data, art.ContentType); err != nil {
		return err
	}
	g.ArtifactKey = key
	s.logger.Info(ctx, "artifact stored", "grant_id", g.ID, "applied", art.Applied)
	return nil
}

func (s *GrantService) List(ctx context.Context, ownerID, assetID string) ([]*models.Grant, error) {
	if _, err := s.repomanager.Assets(s.runner.Conn()).GetForOwner(ctx, ownerID, assetID); err != nil {
		return nil, err
	}
	return s.repomanager.Grants(s.runner.Conn()).ListByAsset(ctx, ownerID, assetID)
}

// Delete snapshots the grant's identity into its audit entries and removes
// it in one transaction, then drops the artifact blob.
func (s *GrantService) Delete(ctx context.Context, ownerID, grantID string) error {
	g, err := s.repomanager.Grants(s.runner.Conn()).GetByID(ctx, grantID)
	if err != nil {
		return err
	}
	if g.OwnerID != ownerID {
		return common.ErrorNotFound
	}
	a, err := s.repomanager.Assets(s.runner.Conn()).Get(ctx, g.AssetID)
	if err != nil {
		return err
	}

	var rewritten int64
	err = s.runner.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.AuditLog(tx).SnapshotGrant(ctx, g.ID, snapshotOf(g, a))
		if err != nil {
			return err
		}
		rewritten = n
		return s.repomanager.Grants(tx).Delete(ctx, g.ID)
	})
	if err != nil {
		return err
	}

	s.assets.deleteBlobs(ctx, g.ArtifactKey)
	s.logger.Info(ctx, "grant deleted", "grant_id", g.ID, "audit_entries", rewritten)
	return nil
}

func validateGrantInput(a *models.Asset, in GrantInput) error {
	switch {
	case utf8.RuneCountInString(in.Name) > maxGrantNameLen:
		return fmt.Errorf("%w: name must be at most %d characters", common.ErrValidation, maxGrantNameLen)
	case in.Password != "" && len(in.Password) < minGrantPasswordLen:
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minGrantPasswordLen)
	case in.MaxViews < 0:
		return fmt.Errorf("%w: max views must not be negative", common.ErrValidation)
	}

	f := in.Features
	if f.Watermark && !a.WatermarkEnabled ||
		f.HiddenWatermark && !a.HiddenWatermarkEnabled ||
		f.Metadata && !a.MetadataEnabled ||
		f.AIProtection && !a.AIProtectionEnabled {
		return fmt.Errorf("%w: requested protection is not enabled on the image", common.ErrValidation)
	}
	return nil
}

func normalizeEmails(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, e := range in {
		e = common.NormalizeEmail(e)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
