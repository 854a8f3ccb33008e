package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/imgstack/imgstack/internal/merge"
)

// writeTestPNG encodes a solid-color PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	return path
}

func TestExecuteTool_ImageDimensions(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "a.png", 320, 200, color.NRGBA{255, 0, 0, 255})

	s := New()
	args, _ := json.Marshal(map[string]string{"path": path})
	result, err := s.executeTool("image_dimensions", args)
	if err != nil {
		t.Fatalf("image_dimensions failed: %v", err)
	}

	dims, ok := result.(*merge.Dimensions)
	if !ok {
		t.Fatalf("result is %T, want *merge.Dimensions", result)
	}
	if dims.Width != 320 || dims.Height != 200 {
		t.Errorf("got %dx%d, want 320x200", dims.Width, dims.Height)
	}
}

func TestExecuteTool_LayoutPreview(t *testing.T) {
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", 100, 50, color.NRGBA{255, 0, 0, 255})
	b := writeTestPNG(t, dir, "b.png", 80, 120, color.NRGBA{0, 0, 255, 255})

	s := New()
	args, _ := json.Marshal(map[string]interface{}{"paths": []string{a, b}})
	result, err := s.executeTool("layout_preview", args)
	if err != nil {
		t.Fatalf("layout_preview failed: %v", err)
	}

	layout, ok := result.(*merge.Layout)
	if !ok {
		t.Fatalf("result is %T, want *merge.Layout", result)
	}
	if layout.CanvasWidth != 120 || layout.CanvasHeight != 210 {
		t.Errorf("canvas: got %dx%d, want 120x210", layout.CanvasWidth, layout.CanvasHeight)
	}
	if layout.Placements[1] != (merge.Placement{X: 10, Y: 70}) {
		t.Errorf("second placement: got %v, want (10,70)", layout.Placements[1])
	}
}

func TestExecuteTool_LayoutPreview_CustomBorder(t *testing.T) {
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", 100, 50, color.NRGBA{255, 0, 0, 255})

	s := New()
	args, _ := json.Marshal(map[string]interface{}{"paths": []string{a}, "border": 0})
	result, err := s.executeTool("layout_preview", args)
	if err != nil {
		t.Fatalf("layout_preview failed: %v", err)
	}

	layout := result.(*merge.Layout)
	if layout.CanvasWidth != 100 || layout.CanvasHeight != 50 {
		t.Errorf("canvas: got %dx%d, want 100x50", layout.CanvasWidth, layout.CanvasHeight)
	}
}

func TestExecuteTool_MergeImages(t *testing.T) {
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", 100, 50, color.NRGBA{255, 0, 0, 255})
	b := writeTestPNG(t, dir, "b.png", 80, 120, color.NRGBA{0, 0, 255, 255})
	out := filepath.Join(dir, "out.png")

	s := New()
	args, _ := json.Marshal(map[string]interface{}{
		"paths":  []string{a, b},
		"output": out,
	})
	result, err := s.executeTool("merge_images", args)
	if err != nil {
		t.Fatalf("merge_images failed: %v", err)
	}

	mr, ok := result.(*merge.MergeResult)
	if !ok {
		t.Fatalf("result is %T, want *merge.MergeResult", result)
	}
	if mr.Width != 120 || mr.Height != 210 || mr.Count != 2 {
		t.Errorf("got %dx%d count=%d, want 120x210 count=2", mr.Width, mr.Height, mr.Count)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestExecuteTool_MergeImages_MissingOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", 10, 10, color.NRGBA{255, 0, 0, 255})

	s := New()
	args, _ := json.Marshal(map[string]interface{}{"paths": []string{a}})
	if _, err := s.executeTool("merge_images", args); err == nil {
		t.Error("merge_images should require an output path")
	}
}

func TestExecuteTool_MergeDirectory(t *testing.T) {
	dir := t.TempDir()
	inputs := filepath.Join(dir, "inputs")
	if err := os.Mkdir(inputs, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	writeTestPNG(t, inputs, "a.png", 40, 40, color.NRGBA{255, 0, 0, 255})
	writeTestPNG(t, inputs, "b.png", 40, 40, color.NRGBA{0, 0, 255, 255})
	out := filepath.Join(dir, "out.png")

	s := New()
	args, _ := json.Marshal(map[string]interface{}{
		"dir":        inputs,
		"output":     out,
		"border":     0,
		"background": "#000000",
	})
	result, err := s.executeTool("merge_directory", args)
	if err != nil {
		t.Fatalf("merge_directory failed: %v", err)
	}

	mr := result.(*merge.MergeResult)
	if mr.Width != 40 || mr.Height != 80 || mr.Count != 2 {
		t.Errorf("got %dx%d count=%d, want 40x80 count=2", mr.Width, mr.Height, mr.Count)
	}
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := New()
	if _, err := s.executeTool("merge_horizontal", nil); err == nil {
		t.Error("unknown tool should fail")
	}
}

func TestHandleToolsCall_ErrorPropagation(t *testing.T) {
	s := New()

	params, _ := json.Marshal(ToolCallParams{
		Name:      "image_dimensions",
		Arguments: json.RawMessage(`{"path":"/nonexistent/a.png"}`),
	})
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})

	if resp.Error == nil {
		t.Fatal("tool failure should surface as a JSON-RPC error")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
	data := fmt.Sprintf("%v", resp.Error.Data)
	if data == "" {
		t.Error("error data should carry the engine message")
	}
}

func TestHandleToolsCall_Result(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "a.png", 64, 48, color.NRGBA{255, 0, 0, 255})

	s := New()
	params, _ := json.Marshal(ToolCallParams{
		Name:      "image_dimensions",
		Arguments: json.RawMessage(fmt.Sprintf(`{"path":%q}`, path)),
	})
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})

	if resp.Error != nil {
		t.Fatalf("tools/call failed: %v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content shape: %v", content)
	}

	var dims merge.Dimensions
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), &dims); err != nil {
		t.Fatalf("failed to parse tool result: %v", err)
	}
	if dims.Width != 64 || dims.Height != 48 {
		t.Errorf("got %dx%d, want 64x48", dims.Width, dims.Height)
	}
}
