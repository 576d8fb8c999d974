// Package entropy implements the image entropy estimators and their
// dispatch registry.
//
// Each method is a standalone, stateless transform from an intensity grid
// (plus a small parameter set) to a Result: zero or more derived display
// arrays with rendering hints, and the ordered scalar statistics to print.
// Feeding the same input twice yields bit-identical output; nothing is
// cached and inputs are never mutated.
//
// # Methods
//
//   - 1d-kapur: entropy-maximizing bi-level threshold selection
//   - 1d-kolmogorov: compression-based entropy estimate
//   - 1d-scipy: global Shannon entropy of the intensity mass, log base 8
//   - 1d-shannon: global Shannon entropy of the intensity mass, log base 2
//   - 2d-delentropy: entropy of the joint gradient distribution (default)
//   - 2d-gradient: gradient magnitude statistics (not a true entropy)
//   - 2d-regional-scikit: local entropy over a disk neighborhood
//   - 2d-regional-shannon: local entropy over a sliding square window
//   - 2d-spectral: entropy of the Fourier magnitude spectrum
//
// # Numeric Conventions
//
// Every entropy summation defines 0*log2(0) = 0 through grid.MaskedLog2, so
// empty histogram bins and degenerate distributions (constant windows,
// all-zero grids) yield exact zeros, never NaN. Gradient-histogram binning
// assumes 8-bit dynamic range; inputs that violate it fail fast with
// ErrGradientRange.
//
// # Error Handling
//
// Methods validate their parameters and numeric invariants and return
// errors; they never panic on bad input and never call os.Exit. Exit policy
// belongs to the CLI.
package entropy
