package merge

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
)

// Stage identifies a pipeline boundary at which a progress event is emitted.
type Stage int

const (
	// StageResolved fires once per source after its dimensions are probed.
	StageResolved Stage = iota

	// StageRendered fires once per source after its bordered copy has been
	// pasted onto the canvas.
	StageRendered

	// StageComposed fires once, after the last source is on the canvas.
	StageComposed

	// StageWritten fires once, after the output file is on disk.
	StageWritten
)

// String returns the stage name used in progress reporting.
func (s Stage) String() string {
	switch s {
	case StageResolved:
		return "resolved"
	case StageRendered:
		return "rendered"
	case StageComposed:
		return "composed"
	case StageWritten:
		return "written"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Event describes one pipeline stage boundary. For per-source stages Index
// is the source's position and Path its file path; for canvas-level stages
// Index is -1 and Path is empty (StageComposed) or the output path
// (StageWritten). Width and Height are the relevant raster's dimensions.
type Event struct {
	Stage  Stage
	Index  int
	Path   string
	Width  int
	Height int
}

// ProgressFunc receives progress events at stage boundaries. It is invoked
// synchronously from the merge goroutine and should return quickly.
type ProgressFunc func(Event)

// Options configures a merge invocation.
type Options struct {
	// Border is the uniform padding in pixels added to all four sides of
	// every source. Must be non-negative.
	Border int

	// Background fills the border regions and any canvas area not covered
	// by a source. A zero value is fully transparent; use
	// DefaultBackground for opaque white.
	Background color.NRGBA

	// Progress, if non-nil, is called at each pipeline stage boundary.
	Progress ProgressFunc
}

// DefaultOptions returns the stock configuration: a 10 pixel border on an
// opaque white background, no progress reporting.
func DefaultOptions() Options {
	return Options{Border: 10, Background: DefaultBackground}
}

// MergeResult summarizes a completed merge.
type MergeResult struct {
	// Path is the output file that was written.
	Path string `json:"path"`

	// Width and Height are the final canvas dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Count is the number of images merged.
	Count int `json:"count"`
}

// Merge stacks the images at the given paths vertically and writes the
// composite as a PNG to outputPath.
//
// The pipeline runs strictly in order: every source's dimensions are probed
// first, the layout is computed, then each source is fully decoded, bordered,
// and pasted onto the canvas before the next source is touched. The encoded
// PNG is buffered in memory and written in one step, so a failure at any
// stage leaves no partial output file. The first error aborts the merge and
// propagates unchanged.
func Merge(paths []string, outputPath string, opts Options) (*MergeResult, error) {
	if opts.Border < 0 {
		return nil, fmt.Errorf("%w: border size %d is negative", ErrInvalidBorder, opts.Border)
	}

	sources, err := ResolveDimensions(paths)
	if err != nil {
		return nil, err
	}
	defer closeAll(sources)

	for i, src := range sources {
		w, h := src.Dimensions()
		emit(opts.Progress, Event{Stage: StageResolved, Index: i, Path: src.Path(), Width: w, Height: h})
	}

	layout, err := ComputeLayout(sourceDimensions(sources), opts.Border)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(layout.CanvasWidth, layout.CanvasHeight, opts.Background)

	for i, src := range sources {
		buf, err := RenderBordered(src, opts.Border, opts.Background)
		if err != nil {
			return nil, err
		}
		canvas, err = paste(canvas, buf, layout.Placements[i])
		if err != nil {
			return nil, err
		}
		emit(opts.Progress, Event{
			Stage: StageRendered, Index: i, Path: src.Path(),
			Width: buf.Bounds().Dx(), Height: buf.Bounds().Dy(),
		})
	}

	emit(opts.Progress, Event{
		Stage: StageComposed, Index: -1,
		Width: layout.CanvasWidth, Height: layout.CanvasHeight,
	})

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, canvas); err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", ErrWriteFailure, outputPath, err)
	}
	if err := os.WriteFile(outputPath, encoded.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteFailure, outputPath, err)
	}

	emit(opts.Progress, Event{
		Stage: StageWritten, Index: -1, Path: outputPath,
		Width: layout.CanvasWidth, Height: layout.CanvasHeight,
	})

	return &MergeResult{
		Path:   outputPath,
		Width:  layout.CanvasWidth,
		Height: layout.CanvasHeight,
		Count:  len(sources),
	}, nil
}

// emit invokes fn with ev if fn is non-nil.
func emit(fn ProgressFunc, ev Event) {
	if fn != nil {
		fn(ev)
	}
}
