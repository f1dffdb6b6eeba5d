package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

func TestUploadOpen_AllAlgorithms(t *testing.T) {
	data := testPNG(t, 24, 16)
	orig, _, err := raster.Decode(data)
	require.NoError(t, err)

	for _, algo := range []string{models.AlgoAESCBC, models.AlgoAESCBCHMAC, models.AlgoChaos} {
		t.Run(algo, func(t *testing.T) {
			e := newEnv(t)
			ctx := context.Background()

			a, err := e.assets.Upload(ctx, "owner-1", "pic.png", data, algo)
			require.NoError(t, err)
			assert.Equal(t, algo, a.Algorithm)
			assert.Equal(t, 24, a.Width)
			assert.Equal(t, 16, a.Height)

			stored, err := e.blobs.Get(ctx, a.StorageKey)
			require.NoError(t, err)
			assert.NotEqual(t, data, stored)

			img, err := e.assets.OpenImage(ctx, a)
			require.NoError(t, err)
			assert.Equal(t, raster.ToNRGBA(orig).Pix, raster.ToNRGBA(img).Pix)

			if algo == models.AlgoChaos {
				assert.NotEmpty(t, a.SidecarKey)
				return
			}
			got, ct, err := e.assets.Open(ctx, a)
			require.NoError(t, err)
			assert.Equal(t, data, got)
			assert.Equal(t, "image/png", ct)
		})
	}
}

func TestUpload_Validation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.assets.Upload(ctx, "owner-1", "", testPNG(t, 4, 4), "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = e.assets.Upload(ctx, "owner-1", "notes.txt", []byte("hello"), "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = e.assets.Upload(ctx, "owner-1", "pic.png", testPNG(t, 4, 4), "rot13")
	assert.ErrorIs(t, err, common.ErrUnsupportedAlgo)
}

func TestAssetAccessIsPerOwner(t *testing.T) {
	e := newEnv(t)
	u, a := e.seedOwner(t)
	ctx := context.Background()

	_, err := e.assets.Get(ctx, "intruder", a.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, e.assets.Delete(ctx, "intruder", a.ID), common.ErrorNotFound)

	list, err := e.assets.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}

func TestAssetDelete_RemovesBlobsAndKeepsAudit(t *testing.T) {
	e := newEnv(t)
	u, a := e.seedOwner(t)
	ctx := context.Background()

	st, err := e.settings.Get(ctx, u.ID, a.ID)
	require.NoError(t, err)
	st.WatermarkEnabled = true
	_, err = e.settings.Update(ctx, u.ID, st)
	require.NoError(t, err)

	g, err := e.grants.Create(ctx, u.ID, a.ID, GrantInput{Name: "friends", Features: pipeline.Features{Watermark: true}})
	require.NoError(t, err)
	require.Equal(t, blob.ArtifactKey(g.ID), g.ArtifactKey)

	_, err = e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.NoError(t, err)
	_, err = e.access.Verify(ctx, g.Token, "bob@example.com", e.mailer.codeFor(t, "bob@example.com"), viewer)
	require.NoError(t, err)

	require.NoError(t, e.assets.Delete(ctx, u.ID, a.ID))

	for _, key := range []string{a.StorageKey, g.ArtifactKey} {
		_, err := e.blobs.Get(ctx, key)
		assert.ErrorIs(t, err, common.ErrorNotFound, key)
	}

	entries, err := e.access.AuditLog(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sunset.png", entries[0].AssetName)
	assert.Equal(t, "friends", entries[0].GrantName)
}
