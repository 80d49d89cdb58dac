package filter

import (
	"fmt"
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode selects the threshold policy used to classify pixels.
type Mode int

const (
	// ModeChannel checks each raw channel value against its own
	// [lower,upper] pair. Requires 6 bounds, each in 0-256 (an upper
	// bound of 256 means "no upper restriction", since channels max
	// out at 255).
	ModeChannel Mode = iota

	// ModeRatio checks the channel ratios R/G, G/B and B/R of the
	// 255-normalized channels against per-ratio pairs. Requires 6
	// bounds. A zero denominator makes the ratio undefined, which
	// stops the pixel.
	ModeRatio

	// ModeSum checks R+G+B (0-765) against one pair. Requires 2
	// bounds in 0-766.
	ModeSum

	// ModeSpread checks (2/3)*(max-min) of the channels (0-170)
	// against one pair. Requires 2 bounds.
	ModeSpread
)

func (m Mode) String() string {
	switch m {
	case ModeChannel:
		return "channel"
	case ModeRatio:
		return "ratio"
	case ModeSum:
		return "sum"
	case ModeSpread:
		return "spread"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// wideBounds reports whether the mode takes 6 bounds (one pair per
// channel or ratio) rather than 2.
func (m Mode) wideBounds() bool {
	return m == ModeChannel || m == ModeRatio
}

// RGB is a replacement color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Black is the default replacement color for stopped pixels.
var Black = RGB{0, 0, 0}

// ParseHexColor parses a "#RRGGBB" string into an RGB replacement color.
// Malformed input returns ErrInvalidColor.
func ParseHexColor(s string) (RGB, error) {
	// colorful.Hex scans with "%02x", which accepts fewer than two
	// digits and ignores trailing input; require the exact "#RRGGBB"
	// shape before delegating.
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Options carries the tunable inputs of one filter invocation.
//
// Zero values select the documented defaults: full image extent, black
// replacement color, ModeChannel. Bounds has no default and must be
// provided.
type Options struct {
	// Bounds is the threshold vector: 6 values
	// (lower1,upper1,lower2,upper2,lower3,upper3) for ModeChannel and
	// ModeRatio, 2 values (lower,upper) for ModeSum and ModeSpread.
	Bounds []float64

	// Height and Width crop the source to its top-left corner before
	// classification. 0 means the source's own extent.
	Height int
	Width  int

	// Color replaces every stopped pixel. Default black.
	Color RGB

	// Mode selects the threshold policy. Default ModeChannel.
	Mode Mode
}

// Validate checks opts against the source image. It must pass before any
// evaluation; every failure maps to one of the package sentinel errors.
func (o Options) Validate(img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: empty %dx%d image", ErrInvalidImage, b.Dx(), b.Dy())
	}

	if o.Mode < ModeChannel || o.Mode > ModeSpread {
		return fmt.Errorf("%w: got %d", ErrInvalidMode, int(o.Mode))
	}

	switch len(o.Bounds) {
	case 2, 6:
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidBoundsShape, len(o.Bounds))
	}
	want := 2
	if o.Mode.wideBounds() {
		want = 6
	}
	if len(o.Bounds) != want {
		return fmt.Errorf("%w: %s mode needs %d bounds, got %d",
			ErrInvalidBoundsForMode, o.Mode, want, len(o.Bounds))
	}

	if o.Height < 0 || o.Width < 0 {
		return fmt.Errorf("%w: negative extent %dx%d", ErrInvalidRegion, o.Width, o.Height)
	}
	if o.Height > b.Dy() || o.Width > b.Dx() {
		return fmt.Errorf("%w: requested %dx%d exceeds source %dx%d",
			ErrInvalidRegion, o.Width, o.Height, b.Dx(), b.Dy())
	}

	return nil
}
