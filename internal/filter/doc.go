// Package filter implements the pixel classification and compositing engine.
//
// The pipeline has three stages, run in sequence over one image:
//
//  1. Region selection: the source image is cropped to a top-left H×W
//     rectangle (defaulting to the full extent).
//  2. Threshold evaluation: every pixel in the region is classified as
//     "pass" or "stop" under one of four policies, producing a boolean
//     mask of the region's shape.
//  3. Compositing: stopped pixels are recolored with a uniform
//     replacement color (default black); passed pixels are copied through
//     unchanged.
//
// Data flows strictly one way; the source image is never mutated.
//
// # Policies
//
// Four mutually exclusive policies select how a pixel's stop/pass
// decision is derived from its red, green, and blue channel values:
//
//   - ModeChannel: each channel checked against its own [lower,upper]
//     pair (6 bounds).
//   - ModeRatio: the ratios R/G, G/B, B/R of the 255-normalized channels
//     checked against per-ratio pairs (6 bounds).
//   - ModeSum: R+G+B checked against one pair (2 bounds).
//   - ModeSpread: (2/3)*(max-min) of the channels checked against one
//     pair (2 bounds).
//
// Bounds are inclusive on the pass side, and all sub-conditions within a
// policy combine with logical OR: any single violation stops the pixel.
//
// # Validation
//
// All inputs are validated once, before any evaluation. Failures are
// fatal to the call and reported through the sentinel errors in this
// package; there are no partial results.
package filter
