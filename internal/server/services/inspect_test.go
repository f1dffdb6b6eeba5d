package services

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/dmitrijs2005/imagekeeper/internal/stego"
)

// fakeReader records the file it was asked about while it still exists.
type fakeReader struct {
	path    string
	existed bool
	tags    map[string]map[string]any
}

func (r *fakeReader) Read(_ context.Context, path string) (map[string]map[string]any, error) {
	r.path = path
	_, err := os.Stat(path)
	r.existed = err == nil
	return r.tags, nil
}

// stegoBuilder embeds the hidden message the way the pipeline stage does.
type stegoBuilder struct{}

func (stegoBuilder) Run(_ context.Context, img image.Image, _ pipeline.Features, s pipeline.Settings) (*pipeline.Artifact, error) {
	out, err := stego.New().Embed(img, s.HiddenMessage)
	if err != nil {
		return nil, err
	}
	data, err := raster.EncodePNG(out)
	if err != nil {
		return nil, err
	}
	return &pipeline.Artifact{Data: data, ContentType: pipeline.ContentType}, nil
}

func flatPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 0xFF})
		}
	}
	data, err := raster.EncodePNG(img)
	require.NoError(t, err)
	return data
}

func TestInspectMetadata_Original(t *testing.T) {
	e := newEnv(t)
	u, a := e.seedOwner(t)
	e.reader.tags = map[string]map[string]any{
		"IFD0":   {"Artist": "Jane", "Software": "imagekeeper"},
		"PNG":    {"ImageWidth": float64(32)},
		"System": {"FileName": "image.png"},
	}

	tags, err := e.inspect.Metadata(context.Background(), u.ID, a.ID, "")
	require.NoError(t, err)

	assert.Equal(t, []Tag{
		{Group: "IFD0", Name: "Artist", Value: "Jane"},
		{Group: "IFD0", Name: "Software", Value: "imagekeeper"},
		{Group: "PNG", Name: "ImageWidth", Value: "32"},
	}, tags)

	assert.True(t, e.reader.existed)
	assert.Equal(t, "image.png", filepath.Base(e.reader.path))
	_, err = os.Stat(e.reader.path)
	assert.True(t, os.IsNotExist(err), "scratch copy must be removed")
}

func TestInspect_Errors(t *testing.T) {
	e := newEnv(t)
	u, a := e.seedOwner(t)
	enableWatermark(t, e, u.ID, a.ID)
	plain, err := e.grants.Create(context.Background(), u.ID, a.ID, GrantInput{Name: "plain"})
	require.NoError(t, err)
	protected, err := e.grants.Create(context.Background(), u.ID, a.ID, GrantInput{Name: "wm", Features: pipeline.Features{Watermark: true}})
	require.NoError(t, err)
	stranger, err := e.users.Register(context.Background(), "stranger@example.com", "password123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		ownerID string
		assetID string
		grantID string
		want    error
	}{
		{"nothing named", u.ID, "", "", common.ErrValidation},
		{"both named", u.ID, a.ID, protected.ID, common.ErrValidation},
		{"foreign asset", stranger.ID, a.ID, "", common.ErrorNotFound},
		{"foreign grant", stranger.ID, "", protected.ID, common.ErrorNotFound},
		{"grant without artifact", u.ID, "", plain.ID, common.ErrorNotFound},
		{"unknown grant", u.ID, "", "missing", common.ErrorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.inspect.Metadata(context.Background(), tt.ownerID, tt.assetID, tt.grantID)
			assert.ErrorIs(t, err, tt.want)
			_, _, err = e.inspect.HiddenMessage(context.Background(), tt.ownerID, tt.assetID, tt.grantID)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInspectHiddenMessage(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.grants = NewGrantService(e.store, e.store, e.blobs, e.assets, stegoBuilder{}, logging.Nop())

	u, err := e.users.Register(ctx, "owner@example.com", "password123")
	require.NoError(t, err)
	a, err := e.assets.Upload(ctx, u.ID, "flat.png", flatPNG(t, 64, 64), "")
	require.NoError(t, err)

	st, err := e.settings.Get(ctx, u.ID, a.ID)
	require.NoError(t, err)
	st.HiddenEnabled = true
	st.HiddenMessage = "owner mark"
	_, err = e.settings.Update(ctx, u.ID, st)
	require.NoError(t, err)

	g, err := e.grants.Create(ctx, u.ID, a.ID, GrantInput{Name: "marked", Features: pipeline.Features{HiddenWatermark: true}})
	require.NoError(t, err)

	msg, found, err := e.inspect.HiddenMessage(ctx, u.ID, "", g.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "owner mark", msg)

	// The original was never marked.
	msg, found, err = e.inspect.HiddenMessage(ctx, u.ID, a.ID, "")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, msg)
}
