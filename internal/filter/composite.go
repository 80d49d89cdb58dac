package filter

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Composite produces the output image for a region and its mask: every
// stopped pixel is set to the replacement color, every passed pixel is
// copied through unchanged, byte for byte. The region itself is not
// modified.
//
// The mask must have the region's shape; Apply guarantees this.
func Composite(region *image.NRGBA, mask *Mask, replacement RGB) *image.NRGBA {
	// Clone normalizes the buffer to zero-origin bounds, so direct
	// stride indexing below is valid even for offset regions.
	out := imaging.Clone(region)
	w := mask.Width

	parallel.Line(mask.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := out.Pix[y*out.Stride : y*out.Stride+w*4]
			for x := 0; x < w; x++ {
				if !mask.Stopped(x, y) {
					continue
				}
				// Only the three color channels are replaced;
				// alpha carries over from the source.
				row[x*4] = replacement.R
				row[x*4+1] = replacement.G
				row[x*4+2] = replacement.B
			}
		}
	})

	return out
}
