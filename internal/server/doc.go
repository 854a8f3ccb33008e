// Package server exposes the merge engine over the MCP (Model Context
// Protocol).
//
// This package provides a JSON-RPC 2.0 server communicating over stdio:
// requests arrive one per line on stdin, responses go to stdout. It is
// designed for MCP-compatible clients that want to drive image merging
// programmatically.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_dimensions: Probe an image's pixel width and height
//   - layout_preview: Compute canvas size and placements without rendering
//   - merge_images: Merge an explicit ordered list of images
//   - merge_directory: Merge all supported images found in a directory
//
// Tool results are JSON documents wrapped in MCP's text content format.
// Tool failures surface as JSON-RPC errors with code -32000 carrying the
// engine's error message, failure kind included.
package server
