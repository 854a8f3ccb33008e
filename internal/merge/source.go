package merge

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"

	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Source is an opened image file in one of two phases: after Open it exposes
// intrinsic dimensions probed from the format header without decoding pixel
// data; the render step later consumes it exactly once, performing the full
// decode and closing the underlying file. A consumed or closed Source cannot
// be decoded again.
//
// Source is not safe for concurrent use.
type Source struct {
	path     string
	file     *os.File
	width    int
	height   int
	consumed bool
}

// Open opens the image file at path and probes its intrinsic dimensions.
//
// Returns an error wrapping ErrSourceUnreadable if the file cannot be
// opened, or ErrSourceCorrupt if its format header cannot be parsed.
// On success the file remains open until the Source is decoded or closed.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceCorrupt, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		f.Close()
		return nil, fmt.Errorf("%w: %s: non-positive dimensions %dx%d",
			ErrSourceCorrupt, path, cfg.Width, cfg.Height)
	}

	// Rewind so the full decode reads the stream from the start.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}

	return &Source{
		path:   path,
		file:   f,
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// Path returns the file path the Source was opened from.
func (s *Source) Path() string {
	return s.path
}

// Dimensions returns the intrinsic pixel width and height probed at Open.
func (s *Source) Dimensions() (width, height int) {
	return s.width, s.height
}

// decode fully decodes the source's pixel data and consumes the handle.
// The underlying file is closed regardless of outcome.
func (s *Source) decode() (image.Image, error) {
	if s.consumed || s.file == nil {
		return nil, fmt.Errorf("%w: %s: source already consumed", ErrRenderFailure, s.path)
	}
	defer s.Close()

	img, _, err := image.Decode(s.file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailure, s.path, err)
	}
	return img, nil
}

// Close releases the underlying file. It is safe to call more than once and
// after decode, which closes the file itself.
func (s *Source) Close() error {
	s.consumed = true
	if s.file == nil {
		return nil
	}
	f := s.file
	s.file = nil
	return f.Close()
}

// ResolveDimensions opens every path in order and probes its dimensions.
//
// On the first failure all sources opened so far are closed and the error
// propagates unchanged; partial results are never returned. An empty path
// list yields an error wrapping ErrInvalidInput without touching the
// filesystem.
func ResolveDimensions(paths []string) ([]*Source, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no image sources given", ErrInvalidInput)
	}

	sources := make([]*Source, 0, len(paths))
	for _, p := range paths {
		src, err := Open(p)
		if err != nil {
			closeAll(sources)
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// closeAll releases every source, ignoring close errors.
func closeAll(sources []*Source) {
	for _, s := range sources {
		s.Close()
	}
}
