package filter

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SelectRegion returns the top-left height×width sub-grid of img as a
// fresh NRGBA buffer. An extent of 0 defaults to the source's own
// extent. Explicit extents that are non-positive or exceed the source
// return ErrInvalidRegion; the selection never clamps silently.
//
// The returned buffer is a copy; the source image is left untouched.
func SelectRegion(img image.Image, height, width int) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	b := img.Bounds()

	if height == 0 {
		height = b.Dy()
	}
	if width == 0 {
		width = b.Dx()
	}
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: negative extent %dx%d", ErrInvalidRegion, width, height)
	}
	if height > b.Dy() || width > b.Dx() {
		return nil, fmt.Errorf("%w: requested %dx%d exceeds source %dx%d",
			ErrInvalidRegion, width, height, b.Dx(), b.Dy())
	}

	rect := image.Rect(b.Min.X, b.Min.Y, b.Min.X+width, b.Min.Y+height)
	return imaging.Crop(img, rect), nil
}
