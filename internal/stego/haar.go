package stego

// Subbands holds a one-level 2-D Haar decomposition. Each band is
// Width x Height, row-major.
type Subbands struct {
	Width, Height int
	Approx        []float64
	Horizontal    []float64
	Vertical      []float64
	Diagonal      []float64
}

// DWT2 runs a one-level orthonormal Haar transform over the w x h samples of
// x. A trailing odd row or column is not part of any 2x2 block and is
// ignored; IDWT2 leaves it untouched.
func DWT2(x []float64, w, h int) Subbands {
	bw, bh := w/2, h/2
	s := Subbands{
		Width:      bw,
		Height:     bh,
		Approx:     make([]float64, bw*bh),
		Horizontal: make([]float64, bw*bh),
		Vertical:   make([]float64, bw*bh),
		Diagonal:   make([]float64, bw*bh),
	}
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			i := 2*by*w + 2*bx
			a, b := x[i], x[i+1]
			c, d := x[i+w], x[i+w+1]

			k := by*bw + bx
			s.Approx[k] = (a + b + c + d) / 2
			s.Horizontal[k] = (a + b - c - d) / 2
			s.Vertical[k] = (a - b + c - d) / 2
			s.Diagonal[k] = (a - b - c + d) / 2
		}
	}
	return s
}

// IDWT2 writes the inverse transform of s back into the w x h samples of x.
func IDWT2(s Subbands, x []float64, w int) {
	for by := 0; by < s.Height; by++ {
		for bx := 0; bx < s.Width; bx++ {
			k := by*s.Width + bx
			i := 2*by*w + 2*bx
			x[i], x[i+1], x[i+w], x[i+w+1] = inverseBlock(s.Approx[k], s.Horizontal[k], s.Vertical[k], s.Diagonal[k])
		}
	}
}

// inverseBlock returns the top-left, top-right, bottom-left and bottom-right
// samples of one 2x2 block.
func inverseBlock(ca, ch, cv, cd float64) (float64, float64, float64, float64) {
	return (ca + ch + cv + cd) / 2,
		(ca + ch - cv - cd) / 2,
		(ca - ch + cv - cd) / 2,
		(ca - ch - cv + cd) / 2
}
