package filter

import "math"

// MaskSummary describes how a policy evaluation split a region.
type MaskSummary struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	TotalPixels    int     `json:"total_pixels"`
	StoppedPixels  int     `json:"stopped_pixels"`
	PassedPixels   int     `json:"passed_pixels"`
	StoppedPercent float64 `json:"stopped_percent"` // 0-100, rounded to 0.01
}

// Summarize counts stopped and passed pixels in a mask. Useful for
// judging how selective a bound vector is before looking at the output
// image.
func Summarize(mask *Mask) *MaskSummary {
	total := mask.Width * mask.Height
	stopped := mask.StoppedCount()

	percent := 0.0
	if total > 0 {
		percent = math.Round(float64(stopped)/float64(total)*10000) / 100
	}

	return &MaskSummary{
		Width:          mask.Width,
		Height:         mask.Height,
		TotalPixels:    total,
		StoppedPixels:  stopped,
		PassedPixels:   total - stopped,
		StoppedPercent: percent,
	}
}
