package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// geometryProperties adds the optional descriptor parameters.
func geometryProperties(props map[string]interface{}) map[string]interface{} {
	props["n_angles"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of orientation bins over [0, 180) degrees. Default from server config (9)",
		"minimum":     1,
	}
	props["cell_width"] = map[string]interface{}{
		"type":        "integer",
		"description": "Cell width in pixels. Default from server config (8)",
		"minimum":     1,
	}
	props["cell_height"] = map[string]interface{}{
		"type":        "integer",
		"description": "Cell height in pixels. Default from server config (8)",
		"minimum":     1,
	}
	return props
}

// descriptorProperties adds the descriptor and preprocessing parameters shared by
// the hog_* tools.
func descriptorProperties(props map[string]interface{}) map[string]interface{} {
	geometryProperties(props)
	props["region"] = map[string]interface{}{
		"type":        "object",
		"description": "Optional region to analyze instead of the whole image (x2, y2 exclusive)",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
	props["scale"] = map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor applied after the region crop. Default 1.0",
		"default":     1.0,
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and the cell grid the descriptor would use for it, including the pixels left over past the last full cell.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": geometryProperties(map[string]interface{}{
					"path": pathProperty(),
				}),
				"required": []string{"path"},
			},
		},

		// Descriptor Operations
		{
			Name:        "hog_compute",
			Description: "Compute the Histogram of Oriented Gradients descriptor of an image. Returns the cell grid geometry, the strongest orientation per cell and optionally the full normalized histogram (0-255).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": descriptorProperties(map[string]interface{}{
					"path": pathProperty(),
					"include_histogram": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the full rows x columns x bins histogram. Default false",
						"default":     false,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "hog_render",
			Description: "Render the HOG descriptor of an image as line segments per cell and bin, returned as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": descriptorProperties(map[string]interface{}{
					"path": pathProperty(),
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"gray", "orientation"},
						"description": "gray: brightness is the bin magnitude. orientation: hue encodes the bin angle. Default gray",
						"default":     "gray",
					},
					"overlay_cells": map[string]interface{}{
						"type":        "boolean",
						"description": "Outline the cell grid on the rendering. Default false",
						"default":     false,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to also write the rendering to (.png, .jpg, .jpeg or .bmp)",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "hog_compare",
			Description: "Compare the HOG descriptors of two images. region and scale apply to the first image only; the whole second image is then resampled to the size of the prepared first image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": descriptorProperties(map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first image file",
					},
					"other_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second image file",
					},
					"metric": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"l1", "l2", "cosine"},
						"description": "Distance metric. Default l2",
						"default":     "l2",
					},
				}),
				"required": []string{"path", "other_path"},
			},
		},
		{
			Name:        "hog_cell",
			Description: "Get the normalized orientation histogram of one descriptor cell.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": descriptorProperties(map[string]interface{}{
					"path": pathProperty(),
					"row": map[string]interface{}{
						"type":        "integer",
						"description": "Cell row (0-based, from top)",
					},
					"col": map[string]interface{}{
						"type":        "integer",
						"description": "Cell column (0-based, from left)",
					},
				}),
				"required": []string{"path", "row", "col"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
