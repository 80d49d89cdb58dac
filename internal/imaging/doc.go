// Package imaging provides the image loading and export collaborators
// around the filter engine.
//
// It contains a thread-safe cache of decoded images keyed by file path,
// a pixel sampler that reports the channel metrics the threshold
// policies operate on (so bound vectors can be chosen by probing
// pixels), and a PNG/base64 encoder for handing output buffers to an
// MCP client.
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner: X grows rightward, Y grows downward.
package imaging
