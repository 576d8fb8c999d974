// Package render turns method results into the diagnostic montage PNG.
//
// The montage is a single dark row of labeled panels: the input image, the
// greyscale conversion, and one panel per derived artifact. Float arrays are
// normalized to their own min/max range and drawn with the greyscale ramp,
// or with the jet-style heat colormap when the artifact's hints force color.
// A panel whose hints request it gets a vertical color bar annotated with
// the data range.
//
// Rendering consumes the core's display contract (array + label + hint set)
// and nothing else; no entropy computation happens here.
package render
