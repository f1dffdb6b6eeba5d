package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/raster"
)

// newTestApp returns an app reading stdin from input. The session file and
// config live in a temp dir.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, string) {
	t.Helper()
	var out bytes.Buffer
	dir := t.TempDir()
	return NewApp(bytes.NewBufferString(input), &out), &out, dir
}

func run(t *testing.T, a *App, dir string, args ...string) error {
	t.Helper()
	args = append([]string{"--session", filepath.Join(dir, "session.json")}, args...)
	return a.Run(context.Background(), args)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: uint8((x*y + 17) % 256), A: 255})
		}
	}
	return img
}

func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	data, err := raster.EncodePNG(img)
	require.NoError(t, err)
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func readTestImage(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	img, err := readImage(path)
	require.NoError(t, err)
	return raster.ToNRGBA(img)
}
