// Package merge implements the vertical image merge engine.
//
// Given an ordered list of image sources, the engine pads each source with a
// uniform border, centers it horizontally on a shared canvas, and stacks the
// results top to bottom. The canvas is exactly as wide as the widest bordered
// source and exactly as tall as the sum of all bordered heights.
//
// # Pipeline
//
// A merge runs through a fixed sequence of stages:
//
//	resolve dimensions -> compute layout -> render each source -> compose -> write
//
// Dimension resolution is a metadata-only probe (image.DecodeConfig); full
// pixel decoding happens once per source during rendering. Sources are
// processed strictly in input order, one at a time, so peak memory stays
// around one decoded image plus the accumulating canvas.
//
// # Coordinate System
//
// All offsets are 0-based with origin at the canvas top-left, X increasing
// rightward and Y increasing downward. Placements refer to the top-left
// corner of the bordered copy, border included.
//
// # Error Handling
//
// Failures are classified by the sentinel errors in this package
// (ErrSourceUnreadable, ErrInvalidBorder, and so on) and wrapped with
// descriptive context; use errors.Is to test the kind. The engine performs no
// retries and writes no partial output: the encoded canvas is buffered in
// memory and written to the destination in a single step.
//
// # Supported Formats
//
// JPEG, PNG, GIF, WebP, and TIFF decoders are registered. Output is always
// PNG.
package merge
