// Package raster converts between encoded images and single-channel planes,
// the unit the chaotic cipher and the steganographic codec operate on.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
)

// Channel indexes into the planes returned by Split.
const (
	Red = iota
	Green
	Blue
	Alpha
)

// ErrUnsupportedFormat is returned for inputs that are neither PNG nor JPEG.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Plane is one 8-bit channel in row-major order.
type Plane struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPlane allocates a zeroed plane.
func NewPlane(w, h int) Plane {
	return Plane{Width: w, Height: h, Pix: make([]uint8, w*h)}
}

// At returns the sample at (x, y).
func (p Plane) At(x, y int) uint8 { return p.Pix[y*p.Width+x] }

// Clone returns a deep copy.
func (p Plane) Clone() Plane {
	return Plane{Width: p.Width, Height: p.Height, Pix: append([]uint8(nil), p.Pix...)}
}

// Decode parses PNG or JPEG bytes.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// EncodePNG serializes img losslessly. 16-bit images stay 16-bit.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ToNRGBA returns img as non-premultiplied 8-bit RGBA, copying only when
// needed. The returned image always has a zero-origin bounds rectangle.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := img.(*image.NRGBA); ok {
		if n.Rect.Min == (image.Point{}) {
			return n
		}
		for y := 0; y < b.Dy(); y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+4*b.Dx()], n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		return out
	}
	draw.Draw(out, out.Rect, img, b.Min, draw.Src)
	return out
}

// ToNRGBA64 returns a 16-bit copy of img with zero-origin bounds. 8-bit
// samples are widened exactly (v*257) so the 0-255 domain is preserved.
func ToNRGBA64(img image.Image) *image.NRGBA64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA64(image.Rect(0, 0, w, h))

	switch src := img.(type) {
	case *image.NRGBA64:
		for y := 0; y < h; y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+8*w], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
		}
	case *image.NRGBA:
		n := ToNRGBA(src)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				si := y*n.Stride + 4*x
				di := y*out.Stride + 8*x
				for c := 0; c < 4; c++ {
					out.Pix[di+2*c] = n.Pix[si+c]
					out.Pix[di+2*c+1] = n.Pix[si+c]
				}
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Set(x, y, color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)))
			}
		}
	}
	return out
}

// Split returns the R, G, B and A planes of img.
func Split(img image.Image) []Plane {
	n := ToNRGBA(img)
	w, h := n.Rect.Dx(), n.Rect.Dy()

	planes := make([]Plane, 4)
	for c := range planes {
		planes[c] = NewPlane(w, h)
	}
	for y := 0; y < h; y++ {
		row := n.Pix[y*n.Stride : y*n.Stride+4*w]
		for x := 0; x < w; x++ {
			for c := 0; c < 4; c++ {
				planes[c].Pix[y*w+x] = row[4*x+c]
			}
		}
	}
	return planes
}

// Merge reassembles planes produced by Split. Three planes yield an opaque
// image; four planes carry alpha as well.
func Merge(planes []Plane) (*image.NRGBA, error) {
	if len(planes) != 3 && len(planes) != 4 {
		return nil, fmt.Errorf("merge: want 3 or 4 planes, got %d", len(planes))
	}
	w, h := planes[0].Width, planes[0].Height
	for i, p := range planes {
		if p.Width != w || p.Height != h || len(p.Pix) != w*h {
			return nil, fmt.Errorf("merge: plane %d is %dx%d, want %dx%d", i, p.Width, p.Height, w, h)
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*out.Stride + 4*x
			for c := 0; c < 3; c++ {
				out.Pix[i+c] = planes[c].Pix[y*w+x]
			}
			out.Pix[i+3] = 0xFF
			if len(planes) == 4 {
				out.Pix[i+3] = planes[Alpha].Pix[y*w+x]
			}
		}
	}
	return out, nil
}
