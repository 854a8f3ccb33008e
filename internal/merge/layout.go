package merge

import "fmt"

// Dimensions holds an image's intrinsic pixel size.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Placement is the top-left offset at which a bordered source is overlaid
// onto the canvas.
type Placement struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Layout is the computed geometry for one merge: the canvas size and one
// placement per source, in source order. It is derived purely from the
// resolved dimensions and the border size; identical inputs always yield
// an identical Layout.
type Layout struct {
	CanvasWidth  int         `json:"canvas_width"`
	CanvasHeight int         `json:"canvas_height"`
	Placements   []Placement `json:"placements"`
}

// ComputeLayout computes the canvas size and per-source placements for
// stacking the given sources vertically with a uniform border.
//
// The canvas width is the maximum bordered width, the canvas height the sum
// of bordered heights. Each source is centered horizontally, rounding toward
// the left pixel when the slack is odd, and placed directly below the
// previous source's bordered extent with no additional gap.
//
// Returns an error wrapping ErrInvalidBorder for a negative border and
// ErrInvalidInput for an empty dimension list.
func ComputeLayout(dims []Dimensions, border int) (*Layout, error) {
	if border < 0 {
		return nil, fmt.Errorf("%w: border size %d is negative", ErrInvalidBorder, border)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: no image sources given", ErrInvalidInput)
	}

	canvasWidth := 0
	canvasHeight := 0
	for _, d := range dims {
		if w := d.Width + 2*border; w > canvasWidth {
			canvasWidth = w
		}
		canvasHeight += d.Height + 2*border
	}

	placements := make([]Placement, len(dims))
	y := 0
	for i, d := range dims {
		bordered := d.Width + 2*border
		placements[i] = Placement{X: (canvasWidth - bordered) / 2, Y: y}
		y += d.Height + 2*border
	}

	return &Layout{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		Placements:   placements,
	}, nil
}

// sourceDimensions extracts the probed dimensions of each source, in order.
func sourceDimensions(sources []*Source) []Dimensions {
	dims := make([]Dimensions, len(sources))
	for i, s := range sources {
		dims[i].Width, dims[i].Height = s.Dimensions()
	}
	return dims
}
