package entropy

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"

	"image-entropy/internal/grid"
)

// Hint is a bit set of rendering directives attached to a derived display
// array. Hints are a contract with the presentation layer only; no
// computation reads them.
type Hint uint8

const (
	// HintColorBar asks the renderer to draw a color bar beside the panel.
	HintColorBar Hint = 1 << iota

	// HintForceColor asks the renderer to use the heat colormap even though
	// derived arrays default to greyscale rendering.
	HintForceColor
)

// Has reports whether all bits of h2 are set in h.
func (h Hint) Has(h2 Hint) bool { return h&h2 == h2 }

// Artifact is one derived 2D array a method wants displayed, with its panel
// caption and rendering hints.
type Artifact struct {
	// Label is the panel caption, e.g. "Gradient" or "Deldensity".
	Label string

	// Data holds the derived values as a (rows, cols) float matrix.
	Data *mat.Dense

	// Hints carries the rendering directives for this array.
	Hints Hint
}

// Stat is one named scalar in a method's summary.
//
// A spread statistic carries a population standard deviation next to the
// mean and prints as "name = mean ± std"; a plain statistic prints as
// "name: value". The two shapes match the tool's log line conventions.
type Stat struct {
	Name   string
	Value  float64
	Std    float64
	Spread bool
}

// String renders the statistic as the result line the CLI prints.
func (s Stat) String() string {
	if s.Spread {
		return fmt.Sprintf("%s = %v ± %v", s.Name, s.Value, s.Std)
	}
	return fmt.Sprintf("%s: %v", s.Name, s.Value)
}

// Result is the uniform output shape every method returns: the display color
// image or nil, the display greyscale grid or nil, zero or more derived
// artifacts, and the ordered summary statistics to print.
//
// Methods with no visual output (the purely scalar estimators) return nil
// for all three display fields and carry only statistics.
type Result struct {
	Color     image.Image
	Grey      *grid.Int
	Artifacts []Artifact
	Stats     []Stat
}

// Stat returns the named statistic and whether it is present.
// Tests and diagnostics address summary values by name through this.
func (r *Result) Stat(name string) (Stat, bool) {
	for _, s := range r.Stats {
		if s.Name == name {
			return s, true
		}
	}
	return Stat{}, false
}
