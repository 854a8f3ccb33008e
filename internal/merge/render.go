package merge

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// RenderBordered produces a bordered copy of the source: a buffer of exactly
// (width+2*border, height+2*border) pixels filled with the background color,
// with the source's pixels pasted at (border, border). Interior pixels are
// copied verbatim; no resampling takes place.
//
// The call consumes the source handle (full decode, file closed). Returns an
// error wrapping ErrRenderFailure if decoding fails or the decoded size does
// not match the probed dimensions.
func RenderBordered(src *Source, border int, background color.NRGBA) (*image.NRGBA, error) {
	if border < 0 {
		return nil, fmt.Errorf("%w: border size %d is negative", ErrInvalidBorder, border)
	}

	img, err := src.decode()
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() != src.width || bounds.Dy() != src.height {
		return nil, fmt.Errorf("%w: %s: decoded size %dx%d does not match probed %dx%d",
			ErrRenderFailure, src.path, bounds.Dx(), bounds.Dy(), src.width, src.height)
	}

	bordered := imaging.New(src.width+2*border, src.height+2*border, background)
	return imaging.Paste(bordered, normalize(img), image.Pt(border, border)), nil
}

// normalize converts a decoded image to a straight-alpha raster the paste
// step handles uniformly. NRGBA images are passed through untouched so their
// pixel values survive bit-exact.
func normalize(img image.Image) image.Image {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return clone.AsRGBA(img)
}
