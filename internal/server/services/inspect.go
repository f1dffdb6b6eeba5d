package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/filex"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/imagekeeper/internal/stego"
)

// MetadataReader lists the tags of an image file grouped by tag group.
type MetadataReader interface {
	Read(ctx context.Context, path string) (map[string]map[string]any, error)
}

// Tag is one metadata entry of an inspected image.
type Tag struct {
	Group string
	Name  string
	Value string
}

// InspectService lets an owner look into an original or into the protected
// copy of one of their grants.
type InspectService struct {
	runner      dbx.Runner
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	assets      *AssetService
	reader      MetadataReader
	scratchDir  string
	logger      logging.Logger
}

func NewInspectService(r dbx.Runner, m repomanager.RepositoryManager, blobs blob.Store, assets *AssetService, reader MetadataReader, scratchDir string, l logging.Logger) *InspectService {
	return &InspectService{
		runner:      r,
		repomanager: m,
		blobs:       blobs,
		assets:      assets,
		reader:      reader,
		scratchDir:  scratchDir,
		logger:      l.With("module", "inspect"),
	}
}

// Metadata returns the tags of the selected image sorted by group and name.
// Exactly one of assetID and grantID must be set.
func (s *InspectService) Metadata(ctx context.Context, ownerID, assetID, grantID string) ([]Tag, error) {
	data, contentType, err := s.image(ctx, ownerID, assetID, grantID)
	if err != nil {
		return nil, err
	}

	scratch, err := filex.NewScratch(s.scratchDir, "inspect-")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := scratch.Cleanup(); err != nil {
			s.logger.Warn(ctx, "scratch cleanup failed", "dir", scratch.Dir, "error", err)
		}
	}()

	path, err := scratch.Write(scratchName(contentType), data)
	if err != nil {
		return nil, err
	}
	grouped, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	var tags []Tag
	for group, fields := range grouped {
		// Filesystem details of the scratch copy say nothing about the image.
		if group == "System" {
			continue
		}
		for name, v := range fields {
			tags = append(tags, Tag{Group: group, Name: name, Value: fmt.Sprint(v)})
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Group != tags[j].Group {
			return tags[i].Group < tags[j].Group
		}
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

// HiddenMessage extracts the invisible watermark of the selected image. found
// is false when the image carries no readable payload.
func (s *InspectService) HiddenMessage(ctx context.Context, ownerID, assetID, grantID string) (msg string, found bool, err error) {
	data, _, err := s.image(ctx, ownerID, assetID, grantID)
	if err != nil {
		return "", false, err
	}
	img, _, err := raster.Decode(data)
	if err != nil {
		return "", false, err
	}

	raw, err := stego.New().Extract(img)
	if errors.Is(err, stego.ErrPayloadCorrupt) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	msg = stego.CleanText(raw)
	return msg, msg != "", nil
}

// image resolves the bytes an inspection works on: the decrypted original or
// the grant's stored artifact.
func (s *InspectService) image(ctx context.Context, ownerID, assetID, grantID string) ([]byte, string, error) {
	switch {
	case assetID != "" && grantID != "":
		return nil, "", fmt.Errorf("%w: name an asset or a grant, not both", common.ErrValidation)
	case assetID != "":
		a, err := s.repomanager.Assets(s.runner.Conn()).GetForOwner(ctx, ownerID, assetID)
		if err != nil {
			return nil, "", err
		}
		return s.assets.Open(ctx, a)
	case grantID != "":
		g, err := s.repomanager.Grants(s.runner.Conn()).GetByID(ctx, grantID)
		if err != nil {
			return nil, "", err
		}
		if g.OwnerID != ownerID || g.ArtifactKey == "" {
			return nil, "", common.ErrorNotFound
		}
		data, err := s.blobs.Get(ctx, g.ArtifactKey)
		if err != nil {
			return nil, "", err
		}
		return data, http.DetectContentType(data), nil
	default:
		return nil, "", fmt.Errorf("%w: asset or grant id required", common.ErrValidation)
	}
}

// scratchName picks an extension exiftool recognizes.
func scratchName(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "image.jpg"
	case "image/gif":
		return "image.gif"
	case "image/webp":
		return "image.webp"
	case "image/bmp":
		return "image.bmp"
	default:
		return "image.png"
	}
}
