// Package server implements the MCP (Model Context Protocol) server
// wrapping the pixel filter engine.
//
// The server speaks JSON-RPC 2.0 over stdio: requests arrive one per
// line on stdin, responses go to stdout. Logging goes to stderr so it
// never corrupts the protocol stream.
//
// Supported MCP methods:
//   - initialize: protocol handshake
//   - tools/list: enumerate available tools
//   - tools/call: execute a tool with arguments
//   - ping: health check
//
// # Available Tools
//
//   - filter_image: run the threshold filter over an image and return
//     the recolored output as base64 PNG plus a mask summary
//   - filter_stats: evaluate a policy without compositing and return
//     only the mask summary
//   - pixel_sample: report the color and policy metrics at a coordinate
//   - image_load: load an image and return its metadata
//   - image_dimensions: return an image's width and height
//
// Tool arguments reference images by file path; decoded images are
// cached across calls.
package server
