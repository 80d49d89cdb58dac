package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/pixel-filter-mcp/internal/filter"
	"github.com/ironsheep/pixel-filter-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "filter_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "filter_image":
		return s.handleFilterImage(args)
	case "filter_stats":
		return s.handleFilterStats(args)
	case "pixel_sample":
		return s.handlePixelSample(args)
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Filter Handlers ===

type filterArgs struct {
	Path   string    `json:"path"`
	Bounds []float64 `json:"bounds"`
	Mode   int       `json:"mode"`
	Height int       `json:"height"`
	Width  int       `json:"width"`
	Color  string    `json:"color"`
}

// options translates tool arguments into engine options, applying the
// documented defaults (mode 0, full extent, black replacement).
func (a filterArgs) options() (filter.Options, error) {
	opts := filter.Options{
		Bounds: a.Bounds,
		Height: a.Height,
		Width:  a.Width,
		Mode:   filter.Mode(a.Mode),
		Color:  filter.Black,
	}
	if a.Color != "" {
		c, err := filter.ParseHexColor(a.Color)
		if err != nil {
			return filter.Options{}, err
		}
		opts.Color = c
	}
	return opts, nil
}

// FilterImageResult is the filter_image tool response: the composited
// output plus the mask summary behind it.
type FilterImageResult struct {
	Image   *imaging.RenderResult `json:"image"`
	Summary *filter.MaskSummary   `json:"summary"`
}

func (s *Server) handleFilterImage(args json.RawMessage) (interface{}, error) {
	var a filterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options()
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(img); err != nil {
		return nil, err
	}

	region, err := filter.SelectRegion(img, opts.Height, opts.Width)
	if err != nil {
		return nil, err
	}
	mask := filter.EvaluateMask(region, opts.Mode, opts.Bounds)
	out := filter.Composite(region, mask, opts.Color)

	rendered, err := imaging.EncodePNG(out)
	if err != nil {
		return nil, err
	}
	return &FilterImageResult{
		Image:   rendered,
		Summary: filter.Summarize(mask),
	}, nil
}

func (s *Server) handleFilterStats(args json.RawMessage) (interface{}, error) {
	var a filterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options()
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(img); err != nil {
		return nil, err
	}

	region, err := filter.SelectRegion(img, opts.Height, opts.Width)
	if err != nil {
		return nil, err
	}
	mask := filter.EvaluateMask(region, opts.Mode, opts.Bounds)
	return filter.Summarize(mask), nil
}

// === Sampling and Metadata Handlers ===

type pixelSampleArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handlePixelSample(args json.RawMessage) (interface{}, error) {
	var a pixelSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SamplePixel(img, a.X, a.Y)
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}
