package merge

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Compose allocates a blank canvas of the given size filled with the
// background color (alpha respected) and overlays each bordered buffer at
// its placement, in slice order. With a correct layout the buffers tile the
// canvas without overlap, so order only affects determinism, not the visual
// result.
//
// Returns an error wrapping ErrCompositionFailure if the buffer and
// placement counts differ or any placement falls outside canvas bounds;
// both indicate a layout bug rather than bad user input.
func Compose(buffers []*image.NRGBA, placements []Placement, canvasWidth, canvasHeight int, background color.NRGBA) (*image.NRGBA, error) {
	if len(buffers) != len(placements) {
		return nil, fmt.Errorf("%w: %d buffers but %d placements",
			ErrCompositionFailure, len(buffers), len(placements))
	}

	canvas := imaging.New(canvasWidth, canvasHeight, background)
	for i, buf := range buffers {
		var err error
		canvas, err = paste(canvas, buf, placements[i])
		if err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

// paste overlays buf onto the canvas at p after checking that the buffer
// lies entirely within canvas bounds.
func paste(canvas *image.NRGBA, buf *image.NRGBA, p Placement) (*image.NRGBA, error) {
	cb := canvas.Bounds()
	w := buf.Bounds().Dx()
	h := buf.Bounds().Dy()
	if p.X < 0 || p.Y < 0 || p.X+w > cb.Dx() || p.Y+h > cb.Dy() {
		return nil, fmt.Errorf("%w: placement (%d,%d) of %dx%d buffer exceeds %dx%d canvas",
			ErrCompositionFailure, p.X, p.Y, w, h, cb.Dx(), cb.Dy())
	}
	return imaging.Paste(canvas, buf, image.Pt(p.X, p.Y)), nil
}
