package cli

import (
	"image"
	"os"

	"github.com/dmitrijs2005/imagekeeper/internal/raster"
)

func readImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := raster.Decode(data)
	return img, err
}

func writePNG(path string, img image.Image) error {
	data, err := raster.EncodePNG(img)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
