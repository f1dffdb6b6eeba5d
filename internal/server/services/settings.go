package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/imagekeeper/internal/stego"
)

// ApplySettings returns a copy of a whose feature flags mirror s. It is the
// only place the asset flags are derived from the settings row.
func ApplySettings(a *models.Asset, s *models.AssetSettings) *models.Asset {
	out := *a
	out.WatermarkEnabled = s.WatermarkEnabled
	out.HiddenWatermarkEnabled = s.HiddenEnabled
	out.MetadataEnabled = s.MetadataEnabled
	out.AIProtectionEnabled = s.AIProtectionEnabled
	return &out
}

type SettingsService struct {
	runner      dbx.Runner
	repomanager repomanager.RepositoryManager
}

func NewSettingsService(r dbx.Runner, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{runner: r, repomanager: m}
}

// Get returns the asset's settings, defaults if never saved.
func (s *SettingsService) Get(ctx context.Context, ownerID, assetID string) (*models.AssetSettings, error) {
	if _, err := s.repomanager.Assets(s.runner.Conn()).GetForOwner(ctx, ownerID, assetID); err != nil {
		return nil, err
	}
	return loadSettings(ctx, s.repomanager, s.runner.Conn(), assetID)
}

// Update validates and stores the settings and the derived asset flags in
// one transaction and returns the updated asset.
func (s *SettingsService) Update(ctx context.Context, ownerID string, st *models.AssetSettings) (*models.Asset, error) {
	var updated *models.Asset
	err := s.runner.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		a, err := s.repomanager.Assets(tx).GetForOwner(ctx, ownerID, st.AssetID)
		if err != nil {
			return err
		}
		if err := validateSettings(a, st); err != nil {
			return err
		}
		st.UpdatedAt = time.Now()
		if err := s.repomanager.AssetSettings(tx).Upsert(ctx, st); err != nil {
			return err
		}
		updated = ApplySettings(a, st)
		return s.repomanager.Assets(tx).UpdateFlags(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func validateSettings(a *models.Asset, st *models.AssetSettings) error {
	if st.WatermarkEnabled {
		if err := st.Watermark.Validate(); err != nil {
			return fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
	}
	if !st.HiddenEnabled {
		return nil
	}
	if st.HiddenMessage == "" {
		return fmt.Errorf("%w: hidden message is required", common.ErrValidation)
	}
	for _, r := range st.HiddenMessage {
		if r > 0xFF {
			return fmt.Errorf("%w: %v", common.ErrValidation, stego.ErrUnsupportedCharacter)
		}
	}
	if n := utf8.RuneCountInString(st.HiddenMessage); n > stego.CapacityFor(a.Width, a.Height) {
		available := (a.Width / 2) * (a.Height / 2)
		return &stego.CapacityError{
			Required:  stego.HeaderBits + 8*n,
			Available: available,
			MaxChars:  stego.MaxChars(available),
		}
	}
	return nil
}

func loadSettings(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, assetID string) (*models.AssetSettings, error) {
	st, err := m.AssetSettings(db).Get(ctx, assetID)
	if errors.Is(err, common.ErrorNotFound) {
		return models.DefaultAssetSettings(assetID), nil
	}
	return st, err
}
