// Package server implements the MCP (Model Context Protocol) server for HOG
// descriptor tools.
//
// This package provides a JSON-RPC 2.0 server that exposes Histogram-of-Oriented-
// Gradients computation, rendering and comparison through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Size, format and the cell grid a descriptor would use
//
// Descriptor Operations:
//   - hog_compute: Grid geometry, dominant orientation per cell, optional histogram
//   - hog_render: Line-segment visualization as base64 PNG, optionally saved to disk
//   - hog_compare: L1, L2 or cosine distance between two images' descriptors
//   - hog_cell: Histogram of a single cell
//
// image_load and every hog_* tool accept n_angles, cell_width and cell_height;
// omitted (or zero) values fall back to the server Config. The hog_* tools also
// take an optional region and scale, applied before the descriptor runs. For
// hog_compare they apply to the first image only.
//
// An image with no gradient anywhere is not a tool failure: results carry
// "degenerate": true and an all-zero histogram.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// A hog_render output_path is evicted after writing, so loading the rendering
// afterwards sees the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Descriptor defaults come from ConfigFromEnv in cmd/hog-mcp.
package server
