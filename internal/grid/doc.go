// Package grid provides the integer pixel grid the entropy methods operate
// on, together with the shared numeric helpers they all rely on: the masked
// base-2 logarithm and the intensity/joint histograms used for probability
// estimation.
//
// # Coordinate System
//
// Grids use image coordinates: (0,0) is the top-left cell, X increases
// rightward, Y increases downward. This matches the standard library image
// types. Conversions to gonum matrices map Y to the row index and X to the
// column index, so a grid of shape (width, height) becomes a (height, width)
// matrix.
//
// # Zero Probability Policy
//
// Entropy sums define 0*log2(0) as 0. Every method funnels that rule through
// MaskedLog2 so the handling of empty bins cannot drift between algorithms.
package grid
