// Package chaos implements the legacy per-channel permutation and
// substitution cipher driven by a piecewise logistic/sine/tent map.
//
// The derived streams cannot be recomputed from the ciphertext alone, so every
// encryption returns them and callers persist them with MarshalStreams.
package chaos

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/imagekeeper/internal/raster"
)

// Mu is the logistic and tent map parameter.
const Mu = 3.99

// ErrStreamMismatch is returned when stored streams don't fit the ciphertext.
var ErrStreamMismatch = errors.New("chaos: streams do not match channel size")

// Streams is the key material derived for one channel.
type Streams struct {
	Perm []uint32 `cbor:"1,keyasint"`
	XOR  []uint8  `cbor:"2,keyasint"`
}

// Seed maps a textual key to [0, 1): the sum of its code points modulo 1000,
// divided by 1000.
func Seed(key string) float64 {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return float64(sum%1000) / 1000.0
}

// Sequence iterates the piecewise chaotic map n times starting from seed.
func Sequence(n int, seed float64) []float64 {
	seq := make([]float64, n)
	x := seed
	for i := range seq {
		switch {
		case x < 0.5:
			x = Mu * x * (1 - x)
		case x < 0.75:
			x = math.Sin(math.Pi * x)
		default:
			x = Mu * math.Min(x, 1-x)
		}
		seq[i] = x
	}
	return seq
}

// DeriveStreams returns the permutation (sort order of the sequence) and the
// XOR byte stream for a channel of n samples.
func DeriveStreams(n int, key string) Streams {
	seq := Sequence(n, Seed(key))

	perm := make([]uint32, n)
	for i := range perm {
		perm[i] = uint32(i)
	}
	sort.SliceStable(perm, func(a, b int) bool { return seq[perm[a]] < seq[perm[b]] })

	xor := make([]uint8, n)
	for i, v := range seq {
		xor[i] = uint8(int(math.Floor(v*256)) & 0xFF)
	}
	return Streams{Perm: perm, XOR: xor}
}

// EncryptChannel permutes the flattened plane and XORs the result with the
// key stream.
func EncryptChannel(p raster.Plane, key string) (raster.Plane, Streams) {
	s := DeriveStreams(len(p.Pix), key)
	out := raster.NewPlane(p.Width, p.Height)
	for i, src := range s.Perm {
		out.Pix[i] = p.Pix[src] ^ s.XOR[i]
	}
	return out, s
}

// DecryptChannel undoes the substitution, then applies the inverse
// permutation.
func DecryptChannel(p raster.Plane, s Streams) (raster.Plane, error) {
	n := len(p.Pix)
	if len(s.Perm) != n || len(s.XOR) != n {
		return raster.Plane{}, ErrStreamMismatch
	}

	inv, err := invert(s.Perm)
	if err != nil {
		return raster.Plane{}, err
	}

	out := raster.NewPlane(p.Width, p.Height)
	for i := range out.Pix {
		j := inv[i]
		out.Pix[i] = p.Pix[j] ^ s.XOR[j]
	}
	return out, nil
}

// invert returns the argsort of a permutation, rejecting anything that is not
// a bijection on [0, n).
func invert(perm []uint32) ([]uint32, error) {
	inv := make([]uint32, len(perm))
	seen := make([]bool, len(perm))
	for i, v := range perm {
		if int(v) >= len(perm) || seen[v] {
			return nil, fmt.Errorf("%w: permutation is not a bijection", ErrStreamMismatch)
		}
		seen[v] = true
		inv[v] = uint32(i)
	}
	return inv, nil
}

// ChannelKey distinguishes the key of each channel.
func ChannelKey(key string, index int) string {
	return key + strconv.Itoa(index)
}

// EncryptPlanes encrypts each plane under its channel key and returns the
// ciphertext planes together with their streams, in the original order.
func EncryptPlanes(planes []raster.Plane, key string) ([]raster.Plane, []Streams) {
	out := make([]raster.Plane, len(planes))
	streams := make([]Streams, len(planes))
	for i, p := range planes {
		out[i], streams[i] = EncryptChannel(p, ChannelKey(key, i))
	}
	return out, streams
}

// DecryptPlanes reverses EncryptPlanes.
func DecryptPlanes(planes []raster.Plane, streams []Streams) ([]raster.Plane, error) {
	if len(planes) != len(streams) {
		return nil, fmt.Errorf("%w: %d planes, %d stream sets", ErrStreamMismatch, len(planes), len(streams))
	}
	out := make([]raster.Plane, len(planes))
	for i, p := range planes {
		var err error
		if out[i], err = DecryptChannel(p, streams[i]); err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
	}
	return out, nil
}
