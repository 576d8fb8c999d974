package entropy

import "fmt"

// GradientMode selects how the gradient-based methods compute fx and fy.
type GradientMode int

const (
	// GradientReal computes discrete finite differences on the raw
	// intensities: the paper's f(n+1)-f(n-1) scheme for delentropy, the
	// standard numerical gradient (halved interior differences, one-sided
	// borders) for the gradient-magnitude method.
	GradientReal GradientMode = iota

	// GradientKernel computes gradients with 3x3 Prewitt convolution on the
	// 8-bit greyscale, saturating each result to [0, 255].
	GradientKernel
)

// String returns the CLI spelling of the mode.
func (m GradientMode) String() string {
	if m == GradientKernel {
		return "kernel"
	}
	return "real"
}

// ParseGradientMode maps the CLI spelling to a GradientMode.
func ParseGradientMode(s string) (GradientMode, error) {
	switch s {
	case "real":
		return GradientReal, nil
	case "kernel":
		return GradientKernel, nil
	}
	return 0, fmt.Errorf("%q is not a valid gradient mode (real, kernel)", s)
}

// CombineMode selects how the gradient-magnitude method merges fx and fy
// into the single display array.
type CombineMode int

const (
	// CombineConvex sums the gradients (bitwise OR in kernel mode).
	CombineConvex CombineMode = iota

	// CombineConcave applies the signed bitwise complement (~x = -x-1) to
	// the convex combination after widening to int.
	CombineConcave
)

// String returns the CLI spelling of the mode.
func (m CombineMode) String() string {
	if m == CombineConvex {
		return "convex"
	}
	return "concave"
}

// ParseCombineMode maps the CLI spelling to a CombineMode.
func ParseCombineMode(s string) (CombineMode, error) {
	switch s {
	case "convex":
		return CombineConvex, nil
	case "concave":
		return CombineConcave, nil
	}
	return 0, fmt.Errorf("%q is not a valid combine mode (convex, concave)", s)
}

// Params carries every tunable a method can consume. Each method reads only
// the subset its registry entry declares; the rest are ignored.
type Params struct {
	// KernelSize is the square window edge for the sliding-window local
	// entropy method. Must be an odd integer >= 3.
	KernelSize int

	// Radius is the disk radius for the disk-neighborhood local entropy
	// method. Must be >= 1.
	Radius int

	// GradientMode picks the gradient scheme for the gradient-based methods.
	GradientMode GradientMode

	// CombineMode picks the display combination for the gradient-magnitude
	// method.
	CombineMode CombineMode

	// InvertOutput applies the signed bitwise complement to the delentropy
	// gradient display array, matching the reference figures.
	InvertOutput bool
}

// DefaultParams returns the parameter defaults: 11x11 kernel, radius 10,
// real gradients, concave combination, inverted gradient display.
func DefaultParams() Params {
	return Params{
		KernelSize:   11,
		Radius:       10,
		GradientMode: GradientReal,
		CombineMode:  CombineConcave,
		InvertOutput: true,
	}
}

// Validate reports the first invalid parameter value, or nil.
// Validation runs before any computation so bad arguments never reach the
// numeric pipeline.
func (p Params) Validate() error {
	if p.KernelSize < 3 || p.KernelSize%2 != 1 {
		return fmt.Errorf("%d is not a valid kernel size (odd integer >= 3)", p.KernelSize)
	}
	if p.Radius < 1 {
		return fmt.Errorf("%d is not a valid radius (integer >= 1)", p.Radius)
	}
	return nil
}
