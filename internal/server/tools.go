package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// borderProperty is the shared schema for the optional border parameter.
func borderProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Uniform border thickness in pixels applied to all four sides. Default 10.",
		"default":     10,
	}
}

// backgroundProperty is the shared schema for the optional background parameter.
func backgroundProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Background fill as a hex color (#RRGGBB or #RRGGBBAA). Default opaque white.",
		"default":     "#FFFFFF",
	}
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_dimensions",
			Description: "Probe the width and height of an image file from its format header, without decoding pixel data.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "layout_preview",
			Description: "Compute the canvas size and per-image placements for a vertical merge without rendering anything. Useful for checking output dimensions before committing to a merge.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Ordered list of image file paths",
					},
					"border": borderProperty(),
				},
				"required": []string{"paths"},
			},
		},
		{
			Name:        "merge_images",
			Description: "Merge an ordered list of images into a single vertical PNG composite. Each image is padded with a uniform border and centered horizontally.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Ordered list of image file paths, stacked top to bottom",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Path the merged PNG is written to",
					},
					"border":     borderProperty(),
					"background": backgroundProperty(),
				},
				"required": []string{"paths", "output"},
			},
		},
		{
			Name:        "merge_directory",
			Description: "Merge all supported images (.jpg, .jpeg, .png, .webp, .tiff, .gif) found in a directory into a single vertical PNG composite.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to scan for image files",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Path the merged PNG is written to",
					},
					"border":     borderProperty(),
					"background": backgroundProperty(),
				},
				"required": []string{"dir", "output"},
			},
		},
	}
}
