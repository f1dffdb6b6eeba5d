package watermark

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/dmitrijs2005/imagekeeper/internal/execx"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Font names understood by TextRenderer. Anything else falls back to
// FontRegular.
const (
	FontRegular = "Go"
	FontBold    = "Go Bold"
	FontItalic  = "Go Italic"
	FontMono    = "Go Mono"
)

// Renderer draws a visible watermark onto an image.
type Renderer interface {
	Render(ctx context.Context, img image.Image, s Settings) (image.Image, error)
}

// TextRenderer draws with the embedded Go fonts. The output keeps 16-bit
// precision so an invisible mark embedded earlier is not requantized.
type TextRenderer struct {
	fonts map[string]*opentype.Font
}

// NewTextRenderer parses the bundled fonts.
func NewTextRenderer() (*TextRenderer, error) {
	r := &TextRenderer{fonts: make(map[string]*opentype.Font, 4)}
	for name, ttf := range map[string][]byte{
		FontRegular: goregular.TTF,
		FontBold:    gobold.TTF,
		FontItalic:  goitalic.TTF,
		FontMono:    gomono.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", name, err)
		}
		r.fonts[name] = f
	}
	return r, nil
}

func (r *TextRenderer) Render(ctx context.Context, img image.Image, s Settings) (image.Image, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	stamp, err := r.stamp(s)
	if err != nil {
		return nil, err
	}

	dst := raster.ToNRGBA64(img)
	if stamp == nil {
		return dst, nil
	}

	// y points down, so a positive angle turns the text clockwise
	theta := float64(s.Rotation) * math.Pi / 180
	sin, cos := math.Sincos(theta)
	cx, cy := float64(stamp.Rect.Dx())/2, float64(stamp.Rect.Dy())/2

	for _, p := range Positions(dst.Rect.Dx(), dst.Rect.Dy(), s) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m := f64.Aff3{
			cos, -sin, p.X - (cos*cx - sin*cy),
			sin, cos, p.Y - (sin*cx + cos*cy),
		}
		xdraw.BiLinear.Transform(dst, m, stamp, stamp.Rect, xdraw.Over, nil)
	}
	return dst, nil
}

// stamp renders the text once, colored and faded, on a transparent tile.
func (r *TextRenderer) stamp(s Settings) (*image.NRGBA, error) {
	f, ok := r.fonts[s.Font]
	if !ok {
		f = r.fonts[FontRegular]
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(s.FontSize),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, s.Text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width <= 0 || height <= 0 || s.Opacity == 0 {
		return nil, nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(s.Text)

	c, err := ParseColor(s.Color)
	if err != nil {
		return nil, err
	}
	opacity := float64(s.Opacity) / 100

	out := image.NewNRGBA(mask.Rect)
	for i, a := range mask.Pix {
		if a == 0 {
			continue
		}
		out.Pix[4*i] = c.R
		out.Pix[4*i+1] = c.G
		out.Pix[4*i+2] = c.B
		out.Pix[4*i+3] = uint8(math.Round(float64(a) * opacity))
	}
	return out, nil
}

// ProcessRenderer delegates to an external program invoked as
//
//	<command> <input.png> <output.png> '<settings json>'
type ProcessRenderer struct {
	Tool *execx.ImageTool
}

func (r ProcessRenderer) Render(ctx context.Context, img image.Image, s Settings) (image.Image, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	arg, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return r.Tool.Apply(ctx, img, string(arg))
}
