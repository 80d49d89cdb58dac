package filter

import (
	"image/color"
	"testing"
)

func TestSummarize(t *testing.T) {
	mask := maskWith(4, 5, [2]int{0, 0}, [2]int{3, 4}, [2]int{2, 2})

	s := Summarize(mask)

	if s.Width != 4 || s.Height != 5 {
		t.Errorf("shape: got %dx%d, want 4x5", s.Width, s.Height)
	}
	if s.TotalPixels != 20 {
		t.Errorf("TotalPixels: got %d, want 20", s.TotalPixels)
	}
	if s.StoppedPixels != 3 {
		t.Errorf("StoppedPixels: got %d, want 3", s.StoppedPixels)
	}
	if s.PassedPixels != 17 {
		t.Errorf("PassedPixels: got %d, want 17", s.PassedPixels)
	}
	if s.StoppedPercent != 15.0 {
		t.Errorf("StoppedPercent: got %v, want 15", s.StoppedPercent)
	}
}

func TestSummarize_Extremes(t *testing.T) {
	empty := NewMask(3, 3)
	if s := Summarize(empty); s.StoppedPixels != 0 || s.StoppedPercent != 0 {
		t.Errorf("all-pass mask: got %d stopped (%v%%)", s.StoppedPixels, s.StoppedPercent)
	}

	img := newUniformImage(3, 3, color.NRGBA{0, 0, 0, 255})
	full := EvaluateMask(img, ModeSum, []float64{800, 900})
	if s := Summarize(full); s.StoppedPixels != 9 || s.StoppedPercent != 100.0 {
		t.Errorf("all-stop mask: got %d stopped (%v%%)", s.StoppedPixels, s.StoppedPercent)
	}
}

func TestSummarize_Rounding(t *testing.T) {
	// 1 of 3 pixels stopped: 33.333...% rounds to 33.33.
	mask := maskWith(3, 1, [2]int{0, 0})

	if s := Summarize(mask); s.StoppedPercent != 33.33 {
		t.Errorf("StoppedPercent: got %v, want 33.33", s.StoppedPercent)
	}
}
