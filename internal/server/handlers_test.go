package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/pixel-filter-mcp/internal/filter"
	"github.com/ironsheep/pixel-filter-mcp/internal/imaging"
)

// writeSplitImage writes a 4x4 PNG whose left half is bright red
// (200,10,10) and right half dark gray (10,10,10), and returns its path.
func writeSplitImage(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{10, 10, 10, 255}
			if x < 2 {
				c = color.NRGBA{200, 10, 10, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "split.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestExecuteTool_FilterImage(t *testing.T) {
	s := New()
	path := writeSplitImage(t)

	// Red channel restricted to [0,50]: the bright-red left half stops.
	args := fmt.Sprintf(`{"path":%q,"bounds":[0,50,0,256,0,256],"color":"#090909"}`, path)

	result, err := s.executeTool("filter_image", json.RawMessage(args))
	if err != nil {
		t.Fatalf("filter_image failed: %v", err)
	}

	fr, ok := result.(*FilterImageResult)
	if !ok {
		t.Fatalf("result type: got %T, want *FilterImageResult", result)
	}

	if fr.Summary.StoppedPixels != 8 {
		t.Errorf("StoppedPixels: got %d, want 8", fr.Summary.StoppedPixels)
	}
	if fr.Summary.PassedPixels != 8 {
		t.Errorf("PassedPixels: got %d, want 8", fr.Summary.PassedPixels)
	}
	if fr.Image.Width != 4 || fr.Image.Height != 4 {
		t.Errorf("output shape: got %dx%d, want 4x4", fr.Image.Width, fr.Image.Height)
	}

	// Decode the output and verify the recoloring.
	raw, err := base64.StdEncoding.DecodeString(fr.Image.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	out, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}

	r, g, b, _ := out.At(0, 0).RGBA()
	if uint8(r>>8) != 9 || uint8(g>>8) != 9 || uint8(b>>8) != 9 {
		t.Errorf("stopped pixel: got (%d,%d,%d), want (9,9,9)",
			uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
	r, g, b, _ = out.At(3, 0).RGBA()
	if uint8(r>>8) != 10 || uint8(g>>8) != 10 || uint8(b>>8) != 10 {
		t.Errorf("passed pixel: got (%d,%d,%d), want (10,10,10)",
			uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

func TestExecuteTool_FilterImage_CropAndDefaults(t *testing.T) {
	s := New()
	path := writeSplitImage(t)

	// No color given: stopped pixels default to black. Crop to the
	// 2x2 top-left corner, which is entirely bright red.
	args := fmt.Sprintf(`{"path":%q,"bounds":[0,50,0,256,0,256],"height":2,"width":2}`, path)

	result, err := s.executeTool("filter_image", json.RawMessage(args))
	if err != nil {
		t.Fatalf("filter_image failed: %v", err)
	}

	fr := result.(*FilterImageResult)
	if fr.Image.Width != 2 || fr.Image.Height != 2 {
		t.Errorf("output shape: got %dx%d, want 2x2", fr.Image.Width, fr.Image.Height)
	}
	if fr.Summary.StoppedPixels != 4 {
		t.Errorf("StoppedPixels: got %d, want 4", fr.Summary.StoppedPixels)
	}

	raw, _ := base64.StdEncoding.DecodeString(fr.Image.ImageBase64)
	out, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	r, g, b, _ := out.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("default replacement should be black, got (%d,%d,%d)", r, g, b)
	}
}

func TestExecuteTool_FilterImage_Errors(t *testing.T) {
	s := New()
	path := writeSplitImage(t)

	tests := []struct {
		name string
		args string
	}{
		{"missing file", `{"path":"/nonexistent.png","bounds":[0,766],"mode":2}`},
		{"bad bounds shape", fmt.Sprintf(`{"path":%q,"bounds":[0,50,100]}`, path)},
		{"bounds/mode mismatch", fmt.Sprintf(`{"path":%q,"bounds":[0,50,0,256,0,256],"mode":2}`, path)},
		{"bad mode", fmt.Sprintf(`{"path":%q,"bounds":[0,766],"mode":4}`, path)},
		{"bad color", fmt.Sprintf(`{"path":%q,"bounds":[0,766],"mode":2,"color":"red"}`, path)},
		{"oversized crop", fmt.Sprintf(`{"path":%q,"bounds":[0,766],"mode":2,"height":99}`, path)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.executeTool("filter_image", json.RawMessage(tt.args)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExecuteTool_FilterStats(t *testing.T) {
	s := New()
	path := writeSplitImage(t)

	// Sum policy: left half sums to 220, right half to 30.
	args := fmt.Sprintf(`{"path":%q,"bounds":[100,766],"mode":2}`, path)

	result, err := s.executeTool("filter_stats", json.RawMessage(args))
	if err != nil {
		t.Fatalf("filter_stats failed: %v", err)
	}

	summary, ok := result.(*filter.MaskSummary)
	if !ok {
		t.Fatalf("result type: got %T, want *filter.MaskSummary", result)
	}
	if summary.StoppedPixels != 8 {
		t.Errorf("StoppedPixels: got %d, want 8", summary.StoppedPixels)
	}
	if summary.StoppedPercent != 50.0 {
		t.Errorf("StoppedPercent: got %v, want 50", summary.StoppedPercent)
	}
}

func TestExecuteTool_PixelSample(t *testing.T) {
	s := New()
	path := writeSplitImage(t)

	args := fmt.Sprintf(`{"path":%q,"x":0,"y":0}`, path)

	result, err := s.executeTool("pixel_sample", json.RawMessage(args))
	if err != nil {
		t.Fatalf("pixel_sample failed: %v", err)
	}

	sample, ok := result.(*imaging.PixelSample)
	if !ok {
		t.Fatalf("result type: got %T, want *imaging.PixelSample", result)
	}
	if sample.RGB != (imaging.RGBColor{R: 200, G: 10, B: 10}) {
		t.Errorf("RGB: got %v, want (200,10,10)", sample.RGB)
	}
	if sample.Sum != 220 {
		t.Errorf("Sum: got %d, want 220", sample.Sum)
	}
}

func TestExecuteTool_ImageLoadAndDimensions(t *testing.T) {
	s := New()
	path := writeSplitImage(t)

	args := fmt.Sprintf(`{"path":%q}`, path)

	result, err := s.executeTool("image_load", json.RawMessage(args))
	if err != nil {
		t.Fatalf("image_load failed: %v", err)
	}
	info := result.(*imaging.Info)
	if info.Width != 4 || info.Height != 4 {
		t.Errorf("info dimensions: got %dx%d, want 4x4", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}

	result, err = s.executeTool("image_dimensions", json.RawMessage(args))
	if err != nil {
		t.Fatalf("image_dimensions failed: %v", err)
	}
	dims := result.(*imaging.Dimensions)
	if dims.Width != 4 || dims.Height != 4 {
		t.Errorf("dimensions: got %dx%d, want 4x4", dims.Width, dims.Height)
	}
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := New()
	if _, err := s.executeTool("no_such_tool", json.RawMessage(`{}`)); err == nil {
		t.Error("expected an error for an unknown tool")
	}
}

func TestHandleToolsCall_ErrorWrapping(t *testing.T) {
	s := New()

	params, _ := json.Marshal(ToolCallParams{
		Name:      "filter_image",
		Arguments: json.RawMessage(`{"path":"/nonexistent.png","bounds":[0,766],"mode":2}`),
	})
	req := &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params}

	resp := s.handleToolsCall(req)

	if resp.Error == nil {
		t.Fatal("expected a JSON-RPC error")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error.Code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_Success(t *testing.T) {
	s := New()
	path := writeSplitImage(t)

	params, _ := json.Marshal(ToolCallParams{
		Name:      "filter_stats",
		Arguments: json.RawMessage(fmt.Sprintf(`{"path":%q,"bounds":[0,766],"mode":2}`, path)),
	})
	req := &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params}

	resp := s.handleToolsCall(req)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
}
