package filter

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// Mask records the stop/pass decision for every pixel of a region.
// true means stopped (the pixel violates the active policy's bounds).
type Mask struct {
	Width   int
	Height  int
	stopped []bool
}

// NewMask returns an all-pass mask of the given shape.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:   width,
		Height:  height,
		stopped: make([]bool, width*height),
	}
}

// Stopped reports whether the pixel at (x,y) violates the policy bounds.
func (m *Mask) Stopped(x, y int) bool {
	return m.stopped[y*m.Width+x]
}

// StoppedCount returns the number of stopped pixels in the mask.
func (m *Mask) StoppedCount() int {
	n := 0
	for _, s := range m.stopped {
		if s {
			n++
		}
	}
	return n
}

// EvaluateMask classifies every pixel of region under the given policy
// and bounds, returning a mask of the region's shape.
//
// The caller is responsible for validating mode and bounds (see
// Options.Validate); EvaluateMask assumes a matching bounds length.
// Pixels are classified independently of each other, so rows are
// evaluated in parallel.
func EvaluateMask(region *image.NRGBA, mode Mode, bounds []float64) *Mask {
	w := region.Bounds().Dx()
	h := region.Bounds().Dy()
	mask := NewMask(w, h)

	min := region.Bounds().Min
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			// Index through PixOffset so regions whose bounds do
			// not start at the origin classify correctly.
			off := region.PixOffset(min.X, min.Y+y)
			row := region.Pix[off : off+w*4]
			out := mask.stopped[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				r := row[x*4]
				g := row[x*4+1]
				b := row[x*4+2]
				out[x] = classify(r, g, b, mode, bounds)
			}
		}
	})

	return mask
}

// classify applies one policy to one pixel. Bounds are inclusive on the
// pass side; every sub-condition combines with OR, so a single violation
// stops the pixel.
func classify(r, g, b uint8, mode Mode, bounds []float64) bool {
	switch mode {
	case ModeChannel:
		return outside(float64(r), bounds[0], bounds[1]) ||
			outside(float64(g), bounds[2], bounds[3]) ||
			outside(float64(b), bounds[4], bounds[5])

	case ModeRatio:
		// Ratios of the 255-normalized channels. A zero denominator
		// makes the ratio undefined, which stops the pixel.
		rn := float64(r) / 255
		gn := float64(g) / 255
		bn := float64(b) / 255
		return ratioOutside(rn, gn, bounds[0], bounds[1]) ||
			ratioOutside(gn, bn, bounds[2], bounds[3]) ||
			ratioOutside(bn, rn, bounds[4], bounds[5])

	case ModeSum:
		s := float64(int(r) + int(g) + int(b))
		return outside(s, bounds[0], bounds[1])

	case ModeSpread:
		hi, lo := r, r
		if g > hi {
			hi = g
		} else if g < lo {
			lo = g
		}
		if b > hi {
			hi = b
		} else if b < lo {
			lo = b
		}
		// Single division keeps the metric exact when 2*(max-min)
		// is a multiple of 3, so inclusive bounds behave predictably.
		d := 2 * float64(hi-lo) / 3
		return outside(d, bounds[0], bounds[1])
	}
	return false
}

func outside(v, lower, upper float64) bool {
	return v < lower || v > upper
}

func ratioOutside(num, den, lower, upper float64) bool {
	if den == 0 {
		return true
	}
	return outside(num/den, lower, upper)
}
