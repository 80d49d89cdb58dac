package filter

import "image"

// Apply runs the full pipeline over one image: validate options, crop to
// the requested top-left region, classify every pixel under the selected
// policy, and recolor stopped pixels with the replacement color.
//
// The source image is never mutated; the result is a fresh buffer of the
// region's shape. All validation failures surface before any pixel is
// evaluated.
func Apply(img image.Image, opts Options) (*image.NRGBA, error) {
	if err := opts.Validate(img); err != nil {
		return nil, err
	}

	region, err := SelectRegion(img, opts.Height, opts.Width)
	if err != nil {
		return nil, err
	}

	mask := EvaluateMask(region, opts.Mode, opts.Bounds)
	return Composite(region, mask, opts.Color), nil
}
