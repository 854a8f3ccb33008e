package merge

import "errors"

// Sentinel errors classifying merge failures. Every error returned by this
// package wraps exactly one of these; use errors.Is to test the kind.
var (
	// ErrInvalidInput indicates an empty source list.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnreadable indicates a source path that does not exist or
	// cannot be opened or read.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrSourceCorrupt indicates a source whose format could not be parsed
	// for dimension metadata.
	ErrSourceCorrupt = errors.New("source corrupt")

	// ErrInvalidBorder indicates a negative border size. It is reported
	// before any file I/O occurs.
	ErrInvalidBorder = errors.New("invalid border")

	// ErrRenderFailure indicates that decoding or bordering a specific
	// source failed.
	ErrRenderFailure = errors.New("render failure")

	// ErrCompositionFailure indicates a placement outside canvas bounds.
	// A correct layout never produces one; this signals a bug, not a user
	// error.
	ErrCompositionFailure = errors.New("composition failure")

	// ErrWriteFailure indicates that encoding the canvas or writing the
	// destination file failed.
	ErrWriteFailure = errors.New("write failure")
)
