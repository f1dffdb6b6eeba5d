package watermark

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/dmitrijs2005/imagekeeper/internal/execx"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 40, 40, 40, 255
	}
	return img
}

func changedPixels(a *image.NRGBA, b image.Image) int {
	n := 0
	bb := raster.ToNRGBA(b)
	for i := range a.Pix {
		if a.Pix[i] != bb.Pix[i] {
			n++
		}
	}
	return n
}

func TestTextRenderer_DrawsText(t *testing.T) {
	r, err := NewTextRenderer()
	require.NoError(t, err)

	src := gray(240, 160)
	s := DefaultSettings()
	s.Opacity = 100
	s.Pattern = PatternSingle
	s.Rotation = 0

	out, err := r.Render(context.Background(), src, s)
	require.NoError(t, err)
	assert.Equal(t, src.Rect, out.Bounds())
	assert.Greater(t, changedPixels(src, out), 100)

	center := raster.ToNRGBA(out)
	corner := center.NRGBAAt(0, 0)
	assert.Equal(t, color.NRGBA{R: 40, G: 40, B: 40, A: 255}, corner, "corners stay untouched for a centered stamp")
}

func TestTextRenderer_RotationAndUnknownFont(t *testing.T) {
	r, err := NewTextRenderer()
	require.NoError(t, err)

	s := DefaultSettings()
	s.Font = "Comic Sans"
	s.Rotation = 30
	out, err := r.Render(context.Background(), gray(120, 120), s)
	require.NoError(t, err)
	assert.Greater(t, changedPixels(gray(120, 120), out), 0)
}

func TestTextRenderer_ZeroOpacityIsIdentity(t *testing.T) {
	r, err := NewTextRenderer()
	require.NoError(t, err)

	s := DefaultSettings()
	s.Opacity = 0
	src := gray(50, 50)
	out, err := r.Render(context.Background(), src, s)
	require.NoError(t, err)
	assert.Zero(t, changedPixels(src, out))
}

func TestTextRenderer_InvalidSettings(t *testing.T) {
	r, err := NewTextRenderer()
	require.NoError(t, err)

	s := DefaultSettings()
	s.Opacity = 900
	_, err = r.Render(context.Background(), gray(10, 10), s)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestTextRenderer_Cancelled(t *testing.T) {
	r, err := NewTextRenderer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Render(ctx, gray(100, 100), DefaultSettings())
	assert.ErrorIs(t, err, context.Canceled)
}

type jsonEchoRunner struct {
	settings Settings
}

func (r *jsonEchoRunner) Run(_ context.Context, _ string, args ...string) ([]byte, error) {
	if err := json.Unmarshal([]byte(args[2]), &r.settings); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	return nil, os.WriteFile(args[1], data, 0o600)
}

func TestProcessRenderer_PassesSettings(t *testing.T) {
	runner := &jsonEchoRunner{}
	pr := ProcessRenderer{Tool: &execx.ImageTool{Runner: runner, Command: "node", ScratchDir: t.TempDir()}}

	s := DefaultSettings()
	s.Text = "ACME"
	_, err := pr.Render(context.Background(), gray(8, 8), s)
	require.NoError(t, err)
	assert.Equal(t, s, runner.settings)
}
