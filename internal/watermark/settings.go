// Package watermark renders visible text watermarks. Settings are typed and
// validated; rendering goes through the Renderer interface so the pipeline can
// use either the in-process TextRenderer or an external tool.
package watermark

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Pattern selects where copies of the text are placed.
type Pattern string

const (
	PatternSingle   Pattern = "single"
	PatternDiagonal Pattern = "diagonal"
	PatternGrid     Pattern = "grid"
	PatternCorners  Pattern = "corners"
	PatternTiled    Pattern = "tiled"
)

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("invalid watermark settings")

// Settings is the visible watermark style. JSON names match the external
// renderer's argument format.
type Settings struct {
	Text     string  `json:"text"`
	Font     string  `json:"font"`
	FontSize int     `json:"fontSize"`
	Color    string  `json:"color"`
	Opacity  int     `json:"opacity"`
	Rotation int     `json:"rotation"`
	Pattern  Pattern `json:"pattern"`
	Spacing  int     `json:"spacing"`
	OffsetX  int     `json:"horizontalOffset"`
	OffsetY  int     `json:"verticalOffset"`
}

// DefaultSettings returns the style used when an owner enables the watermark
// without customizing it.
func DefaultSettings() Settings {
	return Settings{
		Text:     "PROTECTED",
		Font:     FontRegular,
		FontSize: 36,
		Color:    "#FFFFFF",
		Opacity:  50,
		Rotation: -45,
		Pattern:  PatternDiagonal,
		Spacing:  20,
	}
}

// Validate checks ranges. Opacity and spacing are percentages, offsets are
// percentages of the image size, rotation is in degrees.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(strings.TrimSpace(s.Text) != "", "text is empty")
	check(len([]rune(s.Text)) <= 200, "text longer than 200 characters")
	check(s.FontSize >= 6 && s.FontSize <= 400, "font size %d outside 6..400", s.FontSize)
	check(s.Opacity >= 0 && s.Opacity <= 100, "opacity %d outside 0..100", s.Opacity)
	check(s.Rotation >= -360 && s.Rotation <= 360, "rotation %d outside -360..360", s.Rotation)
	check(s.Spacing >= 1 && s.Spacing <= 100, "spacing %d outside 1..100", s.Spacing)
	check(s.OffsetX >= -50 && s.OffsetX <= 50, "horizontal offset %d outside -50..50", s.OffsetX)
	check(s.OffsetY >= -50 && s.OffsetY <= 50, "vertical offset %d outside -50..50", s.OffsetY)

	switch s.Pattern {
	case PatternSingle, PatternDiagonal, PatternGrid, PatternCorners, PatternTiled:
	default:
		errs = append(errs, fmt.Errorf("unknown pattern %q", s.Pattern))
	}
	if _, err := ParseColor(s.Color); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}
	return nil
}

// ParseColor accepts #RGB and #RRGGBB.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// Point is a text anchor; text is centered on it.
type Point struct {
	X, Y float64
}

// Positions lays out text anchors for a w x h image. Anchors are shifted by
// the offsets and kept at least 5% of the shorter side away from the edges.
func Positions(w, h int, s Settings) []Point {
	width, height := float64(w), float64(h)
	minDim := math.Min(width, height)
	padding := minDim * 0.05
	spacing := math.Max(minDim*float64(s.Spacing)/100, padding)
	spacing = math.Max(spacing, 1)

	offX := width * float64(s.OffsetX) / 100
	offY := height * float64(s.OffsetY) / 100
	at := func(x, y float64) Point {
		return Point{
			X: math.Min(math.Max(x+offX, padding), width-padding),
			Y: math.Min(math.Max(y+offY, padding), height-padding),
		}
	}

	var out []Point
	switch s.Pattern {
	case PatternSingle:
		out = append(out, at(width/2, height/2))
	case PatternDiagonal:
		const n = 5
		for i := 0; i < n; i++ {
			out = append(out, at(
				padding+(width-2*padding)*float64(i)/(n-1),
				padding+(height-2*padding)*float64(i)/(n-1),
			))
		}
	case PatternGrid:
		out = lattice(width, height, padding, spacing, at)
	case PatternCorners:
		out = append(out,
			at(padding, padding),
			at(width-padding, padding),
			at(padding, height-padding),
			at(width-padding, height-padding),
		)
	case PatternTiled:
		out = lattice(width, height, padding, spacing*0.75, at)
	}
	return out
}

func lattice(width, height, padding, step float64, at func(x, y float64) Point) []Point {
	var out []Point
	for x := padding; x < width-padding; x += step {
		for y := padding; y < height-padding; y += step {
			out = append(out, at(x, y))
		}
	}
	return out
}
