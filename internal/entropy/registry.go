package entropy

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"image-entropy/internal/grid"
)

// Input bundles what a method consumes: the decoded color image (display
// only, may be nil) and the intensity grid. Methods treat the grid as
// read-only and clone it before any in-place work.
type Input struct {
	Color image.Image
	Grey  *grid.Int
}

// Kind enumerates the implemented algorithms, one case per method.
type Kind int

const (
	KindKapur Kind = iota
	KindKolmogorov
	KindScipy
	KindShannon
	KindDelentropy
	KindGradient
	KindRegionalDisk
	KindRegionalShannon
	KindSpectral
)

// Method is one registry entry: the public name, its algorithm tag, a short
// description for usage output, the parameters it consumes, and the
// implementation.
type Method struct {
	Name    string
	Kind    Kind
	Summary string

	// UsesKernel, UsesRadius and UsesGradient declare which Params fields
	// the method reads, so the CLI can report the relevant settings and
	// tests can exercise each parameter against the methods that honor it.
	UsesKernel   bool
	UsesRadius   bool
	UsesGradient bool

	Run func(in Input, p Params) (*Result, error)
}

// DefaultMethod is the method used when none is selected.
const DefaultMethod = "2d-delentropy"

var methods = map[string]Method{
	"1d-kapur": {
		Name:    "1d-kapur",
		Kind:    KindKapur,
		Summary: "bi-level threshold maximizing the two-partition entropy sum",
		Run:     Kapur1D,
	},
	"1d-kolmogorov": {
		Name:    "1d-kolmogorov",
		Kind:    KindKolmogorov,
		Summary: "compression-based entropy estimate (bits per pixel)",
		Run:     Kolmogorov1D,
	},
	"1d-scipy": {
		Name:    "1d-scipy",
		Kind:    KindScipy,
		Summary: "global Shannon entropy of the intensity mass, log base 8",
		Run:     Global1D,
	},
	"1d-shannon": {
		Name:    "1d-shannon",
		Kind:    KindShannon,
		Summary: "global Shannon entropy of the intensity mass, log base 2",
		Run:     Shannon1D,
	},
	"2d-delentropy": {
		Name:         "2d-delentropy",
		Kind:         KindDelentropy,
		Summary:      "entropy of the joint gradient distribution (default)",
		UsesGradient: true,
		Run:          Delentropy2D,
	},
	"2d-gradient": {
		Name:         "2d-gradient",
		Kind:         KindGradient,
		Summary:      "gradient magnitude statistics (visualization, not an entropy)",
		UsesGradient: true,
		Run:          Gradient2D,
	},
	"2d-regional-scikit": {
		Name:       "2d-regional-scikit",
		Kind:       KindRegionalDisk,
		Summary:    "local entropy over a disk neighborhood",
		UsesRadius: true,
		Run:        RegionalDisk2D,
	},
	"2d-regional-shannon": {
		Name:       "2d-regional-shannon",
		Kind:       KindRegionalShannon,
		Summary:    "local entropy over a sliding square window",
		UsesKernel: true,
		Run:        RegionalShannon2D,
	},
	"2d-spectral": {
		Name:    "2d-spectral",
		Kind:    KindSpectral,
		Summary: "entropy of the Fourier magnitude spectrum",
		Run:     Spectral2D,
	},
}

// Lookup resolves a method name to its registry entry.
// An unknown name yields an error listing the valid names.
func Lookup(name string) (Method, error) {
	m, ok := methods[name]
	if !ok {
		return Method{}, fmt.Errorf("%q is not a valid method (valid: %s)",
			name, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Names returns the registered method names in sorted order.
func Names() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
