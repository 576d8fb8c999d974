package entropy

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"image-entropy/internal/grid"
)

// Shannon1D computes the global Shannon entropy (base 2) of the intensity
// mass distribution.
//
// The grid is treated as an unnormalized distribution: each pixel's
// probability is its intensity divided by the total intensity. The per-pixel
// entropy contributions p * -log2(p) form the "Shannon Entropy" display map
// and their sum is the reported entropy.
//
// A constant image therefore yields a uniform distribution over all H*W
// pixels and entropy log2(H*W); an all-zero image carries no mass and
// reports entropy 0.
func Shannon1D(in Input, _ Params) (*Result, error) {
	g := in.Grey
	entMap := mat.NewDense(g.Height(), g.Width(), nil)

	total := float64(g.Sum())
	entropy := 0.0
	if total > 0 {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				p := float64(g.At(x, y)) / total
				c := p * -grid.MaskedLog2(p)
				entMap.Set(y, x, c)
				entropy += c
			}
		}
	}

	return &Result{
		Color: in.Color,
		Grey:  g,
		Artifacts: []Artifact{
			{Label: "Shannon Entropy", Data: entMap},
		},
		Stats: []Stat{
			{Name: "entropy", Value: entropy},
			{Name: "entropy ratio", Value: entropy / 8.0},
		},
	}, nil
}

// Global1D computes the same global entropy as Shannon1D but with log base 8
// and no display output, delegating the summation to the gonum statistics
// routine (natural log, rescaled by 1/ln 8).
func Global1D(in Input, _ Params) (*Result, error) {
	g := in.Grey

	entropy := 0.0
	if total := float64(g.Sum()); total > 0 {
		probs := g.Floats()
		for i := range probs {
			probs[i] /= total
		}
		entropy = stat.Entropy(probs) / math.Log(8)
	}

	return &Result{
		Stats: []Stat{
			{Name: "entropy", Value: entropy},
			{Name: "entropy ratio", Value: entropy / 8.0},
		},
	}, nil
}
