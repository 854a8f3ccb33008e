package server

import (
	"encoding/json"
	"fmt"

	"github.com/imgstack/imgstack/internal/merge"
	"github.com/imgstack/imgstack/internal/scan"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "merge_images").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool, wrapping the result in MCP's text content format. Tool execution
// errors return a JSON-RPC error response with code -32000.
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
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "layout_preview":
		return s.handleLayoutPreview(args)
	case "merge_images":
		return s.handleMergeImages(args)
	case "merge_directory":
		return s.handleMergeDirectory(args)
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageDimensionsArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageDimensionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	src, err := merge.Open(a.Path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	w, h := src.Dimensions()
	return &merge.Dimensions{Width: w, Height: h}, nil
}

type layoutPreviewArgs struct {
	Paths  []string `json:"paths"`
	Border *int     `json:"border"`
}

func (s *Server) handleLayoutPreview(args json.RawMessage) (interface{}, error) {
	var a layoutPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	sources, err := merge.ResolveDimensions(a.Paths)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, src := range sources {
			src.Close()
		}
	}()

	dims := make([]merge.Dimensions, len(sources))
	for i, src := range sources {
		dims[i].Width, dims[i].Height = src.Dimensions()
	}
	return merge.ComputeLayout(dims, borderOrDefault(a.Border))
}

type mergeImagesArgs struct {
	Paths      []string `json:"paths"`
	Output     string   `json:"output"`
	Border     *int     `json:"border"`
	Background string   `json:"background"`
}

func (s *Server) handleMergeImages(args json.RawMessage) (interface{}, error) {
	var a mergeImagesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return runMerge(a.Paths, a.Output, a.Border, a.Background)
}

type mergeDirectoryArgs struct {
	Dir        string `json:"dir"`
	Output     string `json:"output"`
	Border     *int   `json:"border"`
	Background string `json:"background"`
}

func (s *Server) handleMergeDirectory(args json.RawMessage) (interface{}, error) {
	var a mergeDirectoryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	paths, err := scan.Dir(a.Dir)
	if err != nil {
		return nil, err
	}
	return runMerge(paths, a.Output, a.Border, a.Background)
}

// runMerge applies tool-level defaults and invokes the engine.
func runMerge(paths []string, output string, border *int, background string) (*merge.MergeResult, error) {
	if output == "" {
		return nil, fmt.Errorf("output path is required")
	}

	bg := merge.DefaultBackground
	if background != "" {
		var err error
		bg, err = merge.ParseBackground(background)
		if err != nil {
			return nil, err
		}
	}

	return merge.Merge(paths, output, merge.Options{
		Border:     borderOrDefault(border),
		Background: bg,
	})
}

// borderOrDefault resolves an optional border argument to the stock default.
func borderOrDefault(border *int) int {
	if border == nil {
		return merge.DefaultOptions().Border
	}
	return *border
}
