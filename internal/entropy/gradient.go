package entropy

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/anthonynsimon/bild/convolution"

	"image-entropy/internal/grid"
)

// Gradient2D computes per-pixel gradients and reports the mean and
// population standard deviation of their combined display array as the
// "gradient" statistic. The combination exists for visualization; this
// method does not compute a true entropy.
//
// GradientMode selects the scheme:
//   - real: the standard numerical gradient — symmetric half differences
//     (f(n+1)-f(n-1))/2 at interior points, one-sided differences at the
//     borders — producing float arrays of the full image shape.
//   - kernel: 3x3 Prewitt convolution on the 8-bit greyscale with per-element
//     saturation to [0, 255] and clamped edge extension.
//
// CombineMode selects the display combination: convex is gradx+grady in real
// mode and bitwise OR in kernel mode; concave applies the signed bitwise
// complement (~x = -x-1) to the convex combination after widening to int.
// The defaults (real, concave) reproduce the tool's original output.
func Gradient2D(in Input, p Params) (*Result, error) {
	g := in.Grey
	combined := mat.NewDense(g.Height(), g.Width(), nil)

	if p.GradientMode == GradientReal {
		fy := numGradientY(g)
		fx := numGradientX(g)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				sum := fy.At(y, x) + fx.At(y, x)
				if p.CombineMode == CombineConcave {
					combined.Set(y, x, float64(^int(sum)))
				} else {
					combined.Set(y, x, sum)
				}
			}
		}
	} else {
		fx := prewittGrad(g, true)
		fy := prewittGrad(g, false)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				v := fx.At(x, y) | fy.At(x, y)
				if p.CombineMode == CombineConcave {
					v = ^v
				}
				combined.Set(y, x, float64(v))
			}
		}
	}

	raw := combined.RawMatrix().Data
	mean := stat.Mean(raw, nil)
	std := stat.PopStdDev(raw, nil)

	return &Result{
		Color: in.Color,
		Grey:  g,
		Artifacts: []Artifact{
			{Label: "Gradient", Data: combined},
		},
		Stats: []Stat{
			{Name: "gradient", Value: mean, Std: std, Spread: true},
		},
	}, nil
}

// numGradientX returns the numerical gradient along the horizontal axis:
// (f(x+1)-f(x-1))/2 at interior columns, one-sided differences at the first
// and last column. Shape matches the input. A single-column grid has no
// horizontal neighbor anywhere and yields all zeros.
func numGradientX(g *grid.Int) *mat.Dense {
	out := mat.NewDense(g.Height(), g.Width(), nil)
	if g.Width() < 2 {
		return out
	}
	w := g.Width()
	for y := 0; y < g.Height(); y++ {
		out.Set(y, 0, float64(g.At(1, y)-g.At(0, y)))
		for x := 1; x < w-1; x++ {
			out.Set(y, x, float64(g.At(x+1, y)-g.At(x-1, y))/2)
		}
		out.Set(y, w-1, float64(g.At(w-1, y)-g.At(w-2, y)))
	}
	return out
}

// numGradientY is numGradientX along the vertical axis.
func numGradientY(g *grid.Int) *mat.Dense {
	out := mat.NewDense(g.Height(), g.Width(), nil)
	if g.Height() < 2 {
		return out
	}
	h := g.Height()
	for x := 0; x < g.Width(); x++ {
		out.Set(0, x, float64(g.At(x, 1)-g.At(x, 0)))
		for y := 1; y < h-1; y++ {
			out.Set(y, x, float64(g.At(x, y+1)-g.At(x, y-1))/2)
		}
		out.Set(h-1, x, float64(g.At(x, h-1)-g.At(x, h-2)))
	}
	return out
}

// prewittGrad convolves the 8-bit greyscale with a 3x3 Prewitt kernel,
// horizontal or vertical, saturating each result to [0, 255].
func prewittGrad(g *grid.Int, horizontal bool) *grid.Int {
	k := &convolution.Kernel{Width: 3, Height: 3}
	if horizontal {
		k.Matrix = []float64{
			1, 0, -1,
			1, 0, -1,
			1, 0, -1,
		}
	} else {
		k.Matrix = []float64{
			1, 1, 1,
			0, 0, 0,
			-1, -1, -1,
		}
	}

	conv := convolution.Convolve(g.Gray(), k, &convolution.Options{})
	out := grid.NewInt(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		row := conv.Pix[y*conv.Stride : y*conv.Stride+g.Width()*4]
		for x := 0; x < g.Width(); x++ {
			// Greyscale input, so the R channel carries the result.
			out.Set(x, y, int(row[x*4]))
		}
	}
	return out
}
