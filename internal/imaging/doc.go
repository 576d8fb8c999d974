// Package imaging decodes input files into the pixel data the entropy
// methods operate on.
//
// This package is a thin boundary over the standard library decoders, the
// golang.org/x/image extra decoders (TIFF, WebP), and the
// disintegration/imaging greyscale filter. It produces two things per run:
// the decoded color image (kept only for display) and the integer intensity
// grid that every entropy method consumes.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward, matching both the
// standard library image types and the grid package.
//
// # Bit Depth
//
// 8-bit sources and color sources produce intensities in [0, 255]. 16-bit
// greyscale sources (*image.Gray16, typically TIFF) keep their native
// [0, 65535] range; downstream methods that assume an 8-bit dynamic range
// validate that assumption themselves and fail fast when it does not hold.
//
// # Error Handling
//
// Load returns errors for missing files and undecodable content. Intensity
// extraction cannot fail; it accepts any decoded image.
package imaging
