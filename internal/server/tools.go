package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the shared "path" argument schema.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// filterProperties describes the arguments shared by filter_image and
// filter_stats.
func filterProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"bounds": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "number"},
			"description": "Threshold vector: 6 values (lower/upper per channel or ratio) for modes 0-1, 2 values (lower/upper) for modes 2-3. Bounds are inclusive on the pass side.",
		},
		"mode": map[string]interface{}{
			"type":        "integer",
			"description": "Threshold policy: 0=channel range, 1=channel-ratio range, 2=channel-sum range, 3=channel-spread range. Default 0.",
			"default":     0,
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Optional top-left crop height. Default: full image height.",
		},
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Optional top-left crop width. Default: full image width.",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	filterImageProps := filterProperties()
	filterImageProps["color"] = map[string]interface{}{
		"type":        "string",
		"description": "Replacement color for stopped pixels as \"#RRGGBB\". Default \"#000000\" (black).",
		"default":     "#000000",
	}

	return []Tool{
		{
			Name:        "filter_image",
			Description: "Classify every pixel of an image under a threshold policy and return the result: pixels violating the bounds are recolored, the rest pass through unchanged. The output image is returned as base64 PNG together with a stopped/passed summary.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": filterImageProps,
				"required":   []string{"path", "bounds"},
			},
		},
		{
			Name:        "filter_stats",
			Description: "Evaluate a threshold policy over an image without producing an output image. Returns only the stopped/passed pixel counts, useful for judging how selective a bound vector is.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": filterProperties(),
				"required":   []string{"path", "bounds"},
			},
		},
		{
			Name:        "pixel_sample",
			Description: "Get the color at a pixel coordinate together with the metrics each threshold policy computes from it (channel sum, channel spread, channel ratios). Use this to probe representative pixels before choosing bounds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and size. Caches the decoded image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
