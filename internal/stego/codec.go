// Package stego hides short text payloads in the diagonal detail subband of a
// one-level Haar transform of one color channel.
//
// The payload is a 32-bit big-endian character count followed by 8 bits per
// character. Each bit moves one coefficient to the nearest multiple of 0.5 and
// then by +Epsilon (1) or -Epsilon (0). Where clipping to [0,255] would erase
// the offset, a neighbouring multiple is used instead. The mark is fragile:
// any lossy re-encode or resampling destroys it.
package stego

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
)

const (
	// HeaderBits is the size of the length prefix.
	HeaderBits = 32
	// Epsilon is the offset applied on top of the 0.5 quantization grid.
	Epsilon = 0.2

	sampleScale = 257.0
	// gridSteps bounds how far from the nearest grid point a bit may be
	// placed when clipping rules out the nearest one.
	gridSteps = 4
)

var (
	ErrUnsupportedCharacter = errors.New("stego: character outside 0-255")
	ErrPayloadCorrupt       = errors.New("stego: no valid payload found")
	ErrUnrepresentable      = errors.New("stego: payload does not survive clipping")
)

// CapacityError reports a message that does not fit the image.
type CapacityError struct {
	Required  int
	Available int
	MaxChars  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message needs %d coefficients, image has %d (max %d characters)",
		e.Required, e.Available, e.MaxChars)
}

// Is lets errors.Is match common.ErrCapacityExceeded.
func (e *CapacityError) Is(target error) bool { return target == common.ErrCapacityExceeded }

// Codec embeds into and extracts from one channel.
type Codec struct {
	Channel int
}

// New returns a codec working on the blue channel.
func New() Codec { return Codec{Channel: raster.Blue} }

// MaxChars is the number of characters a subband of n coefficients holds.
func MaxChars(n int) int {
	if n < HeaderBits {
		return 0
	}
	return (n - HeaderBits) / 8
}

// Capacity returns how many characters fit into img.
func Capacity(img image.Image) int {
	b := img.Bounds()
	return CapacityFor(b.Dx(), b.Dy())
}

// CapacityFor is Capacity for an image of the given dimensions.
func CapacityFor(w, h int) int {
	return MaxChars((w / 2) * (h / 2))
}

// Embed returns a copy of img carrying msg. The result keeps 16-bit channel
// precision so the sub-integer coefficient offsets survive encoding; save it
// with a lossless 16-bit capable format.
func (c Codec) Embed(img image.Image, msg string) (*image.NRGBA64, error) {
	bits, err := encodeMessage(msg)
	if err != nil {
		return nil, err
	}

	out := raster.ToNRGBA64(img)
	w, h := out.Rect.Dx(), out.Rect.Dy()

	samples := c.read(out)
	sb := DWT2(samples, w, h)

	if n := len(sb.Diagonal); len(bits) > n {
		return nil, &CapacityError{Required: len(bits), Available: n, MaxChars: MaxChars(n)}
	}

	for i, bit := range bits {
		if !embedBit(sb, i, bit) {
			return nil, fmt.Errorf("%w: coefficient %d", ErrUnrepresentable, i)
		}
	}

	IDWT2(sb, samples, w)
	c.write(out, samples)
	return out, nil
}

// Extract recovers a message embedded by Embed.
func (c Codec) Extract(img image.Image) (string, error) {
	n := raster.ToNRGBA64(img)
	w, h := n.Rect.Dx(), n.Rect.Dy()
	d := DWT2(c.read(n), w, h).Diagonal

	if len(d) < HeaderBits {
		return "", ErrPayloadCorrupt
	}

	var length uint64
	for _, coeff := range d[:HeaderBits] {
		length = length<<1 | uint64(bitOf(coeff))
	}
	if HeaderBits+8*length > uint64(len(d)) {
		return "", fmt.Errorf("%w: header claims %d characters", ErrPayloadCorrupt, length)
	}

	var sb strings.Builder
	for i := 0; i < int(length); i++ {
		var ch rune
		for _, coeff := range d[HeaderBits+8*i : HeaderBits+8*i+8] {
			ch = ch<<1 | rune(bitOf(coeff))
		}
		sb.WriteRune(ch)
	}
	return sb.String(), nil
}

// CleanText keeps the text before the first NUL of an extracted message and
// trims surrounding whitespace.
func CleanText(s string) string {
	s, _, _ = strings.Cut(s, "\x00")
	return strings.TrimSpace(s)
}

// embedBit moves diagonal coefficient k to the nearest multiple of 0.5 offset
// by Epsilon in the direction of bit. When clipping the block to [0,255] would
// lose the bit, neighbouring grid points are tried, nearest first.
func embedBit(sb Subbands, k int, bit uint8) bool {
	cur := sb.Diagonal[k]
	q := math.Round(cur*2) / 2
	off := -Epsilon
	if bit == 1 {
		off = Epsilon
	}

	for dist := 0; dist <= gridSteps; dist++ {
		best, found := 0.0, false
		for _, step := range []int{-dist, dist} {
			t := q + float64(step)/2 + off
			if storedBit(sb, k, t) != int(bit) {
				continue
			}
			if !found || math.Abs(t-cur) < math.Abs(best-cur) {
				best, found = t, true
			}
		}
		if found {
			sb.Diagonal[k] = best
			return true
		}
	}
	return false
}

// storedBit is the bit Extract reads from block k when its diagonal
// coefficient is cd.
func storedBit(sb Subbands, k int, cd float64) int {
	a, b, c, d := inverseBlock(sb.Approx[k], sb.Horizontal[k], sb.Vertical[k], cd)
	a, b, c, d = stored(a), stored(b), stored(c), stored(d)
	return bitOf((a - b - c + d) / 2)
}

// stored is v as it reads back after write.
func stored(v float64) float64 {
	return float64(quantize(v)) / sampleScale
}

func quantize(v float64) uint16 {
	v = math.Min(math.Max(v, 0), 255)
	return uint16(math.Round(v * sampleScale))
}

func bitOf(coeff float64) int {
	if coeff-math.Round(coeff*2)/2 > 0 {
		return 1
	}
	return 0
}

func encodeMessage(msg string) ([]uint8, error) {
	runes := []rune(msg)
	bits := make([]uint8, 0, HeaderBits+8*len(runes))

	n := uint32(len(runes))
	for i := HeaderBits - 1; i >= 0; i-- {
		bits = append(bits, uint8(n>>uint(i)&1))
	}
	for _, r := range runes {
		if r < 0 || r > 255 {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharacter, r)
		}
		for i := 7; i >= 0; i-- {
			bits = append(bits, uint8(r>>uint(i)&1))
		}
	}
	return bits, nil
}

// read returns the selected channel in the 0-255 domain.
func (c Codec) read(img *image.NRGBA64) []float64 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y) + 2*c.Channel
			out[y*w+x] = float64(uint16(img.Pix[i])<<8|uint16(img.Pix[i+1])) / sampleScale
		}
	}
	return out
}

// write clips samples to [0,255] and stores them back at 16-bit precision.
func (c Codec) write(img *image.NRGBA64, samples []float64) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := quantize(samples[y*w+x])
			i := img.PixOffset(x, y) + 2*c.Channel
			img.Pix[i] = uint8(s >> 8)
			img.Pix[i+1] = uint8(s)
		}
	}
}
