package imaging

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an 8-bit RGB color.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ChannelRatios holds the three channel ratios the ratio policy checks,
// computed on 255-normalized channels.
type ChannelRatios struct {
	RG float64 `json:"rg"` // R/G
	GB float64 `json:"gb"` // G/B
	BR float64 `json:"br"` // B/R
}

// PixelSample reports the color at one coordinate together with the
// metrics each threshold policy derives from it, so bound vectors can be
// chosen by probing representative pixels.
type PixelSample struct {
	X   int      `json:"x"`
	Y   int      `json:"y"`
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`

	// Sum is R+G+B (0-765), the sum policy's metric.
	Sum int `json:"sum"`

	// Spread is (2/3)*(max-min) (0-170), the spread policy's metric.
	Spread float64 `json:"spread"`

	// Ratios is nil when any channel is zero, in which case the ratio
	// policy stops the pixel regardless of bounds.
	Ratios *ChannelRatios `json:"ratios,omitempty"`
}

// SamplePixel extracts the color and policy metrics at (x,y).
// Coordinates outside the image bounds are an error.
func SamplePixel(img image.Image, x, y int) (*PixelSample, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, _ := img.At(x, y).RGBA()
	// Convert from 16-bit to 8-bit
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)

	c := colorful.Color{R: float64(r8) / 255, G: float64(g8) / 255, B: float64(b8) / 255}
	h, s, l := c.Hsl()

	sample := &PixelSample{
		X:      x,
		Y:      y,
		Hex:    fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB:    RGBColor{R: r8, G: g8, B: b8},
		HSL:    HSLColor{H: int(math.Round(h)), S: int(math.Round(s * 100)), L: int(math.Round(l * 100))},
		Sum:    int(r8) + int(g8) + int(b8),
		Spread: spread(r8, g8, b8),
	}

	if r8 != 0 && g8 != 0 && b8 != 0 {
		// Normalization cancels in the quotients, but the ratios are
		// defined on the 255-normalized channels like the policy.
		rn := float64(r8) / 255
		gn := float64(g8) / 255
		bn := float64(b8) / 255
		sample.Ratios = &ChannelRatios{
			RG: rn / gn,
			GB: gn / bn,
			BR: bn / rn,
		}
	}

	return sample, nil
}

func spread(r, g, b uint8) float64 {
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
	return 2 * float64(hi-lo) / 3
}
