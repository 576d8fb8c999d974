package entropy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"image-entropy/internal/grid"
)

// RegionalShannon2D computes per-pixel local Shannon entropy (base 2) over a
// sliding square window.
//
// Each output cell (x, y) holds the entropy of the pixel-value distribution
// inside the KernelSize x KernelSize window centered there.
//
// # Border Policy
//
// Windows are clipped to the image with a symmetric inclusive clamp: rows
// max(0, y-r)..min(H-1, y+r) and columns max(0, x-r)..min(W-1, x+r) with
// r = (KernelSize-1)/2. Interior cells see the full window; border windows
// shrink symmetrically. This policy is fixed and all fixtures assume it.
//
// O(H*W*k^2); fine for the small kernels and images this tool targets.
func RegionalShannon2D(in Input, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := in.Grey
	rad := (p.KernelSize - 1) / 2

	entMap := mat.NewDense(g.Height(), g.Width(), nil)
	counts := make(map[int]int)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			entMap.Set(y, x, windowEntropy(g, x-rad, y-rad, x+rad, y+rad, counts))
		}
	}

	raw := entMap.RawMatrix().Data
	mean := stat.Mean(raw, nil)
	std := stat.PopStdDev(raw, nil)

	return &Result{
		Color: in.Color,
		Grey:  g,
		Artifacts: []Artifact{
			{
				Label: fmt.Sprintf("Entropy Map With %dx%d Kernel", p.KernelSize, p.KernelSize),
				Data:  entMap,
				Hints: HintColorBar | HintForceColor,
			},
		},
		Stats: []Stat{
			{Name: "entropy", Value: mean, Std: std, Spread: true},
		},
	}, nil
}

// RegionalDisk2D computes per-pixel local Shannon entropy (base 2) over a
// disk-shaped neighborhood of the configured radius, the rank-filter
// formulation of local entropy.
//
// The disk contains every offset (dx, dy) with dx^2+dy^2 <= Radius^2,
// clipped to the image bounds at borders with the same symmetric clamp as
// RegionalShannon2D. The reported entropy is the map mean.
func RegionalDisk2D(in Input, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := in.Grey

	// Offsets of the disk structuring element, precomputed once.
	var disk [][2]int
	for dy := -p.Radius; dy <= p.Radius; dy++ {
		for dx := -p.Radius; dx <= p.Radius; dx++ {
			if dx*dx+dy*dy <= p.Radius*p.Radius {
				disk = append(disk, [2]int{dx, dy})
			}
		}
	}

	entMap := mat.NewDense(g.Height(), g.Width(), nil)
	counts := make(map[int]int)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			size := 0
			for _, d := range disk {
				px, py := x+d[0], y+d[1]
				if px < 0 || px >= g.Width() || py < 0 || py >= g.Height() {
					continue
				}
				counts[g.At(px, py)]++
				size++
			}
			entMap.Set(y, x, drainCounts(counts, size))
		}
	}

	mean := stat.Mean(entMap.RawMatrix().Data, nil)

	return &Result{
		Color: in.Color,
		Grey:  g,
		Artifacts: []Artifact{
			{Label: "Scikit Entropy", Data: entMap, Hints: HintColorBar},
		},
		Stats: []Stat{
			{Name: "entropy", Value: mean},
			{Name: "entropy ratio", Value: mean / 8.0},
		},
	}, nil
}

// windowEntropy returns the Shannon entropy (base 2) of the value
// distribution in the rectangle [x0,x1] x [y0,y1], clamped to the grid.
// counts is a scratch map reused across calls; it is left empty on return.
func windowEntropy(g *grid.Int, x0, y0, x1, y1 int, counts map[int]int) float64 {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= g.Width() {
		x1 = g.Width() - 1
	}
	if y1 >= g.Height() {
		y1 = g.Height() - 1
	}

	size := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			counts[g.At(x, y)]++
			size++
		}
	}
	return drainCounts(counts, size)
}

// drainCounts folds a value-count map of a size-element sample into its
// Shannon entropy (base 2), emptying the map for reuse. A degenerate sample
// (empty, or a single repeated value) yields exactly 0.
func drainCounts(counts map[int]int, size int) float64 {
	entropy := 0.0
	for v, n := range counts {
		p := float64(n) / float64(size)
		entropy += p * -grid.MaskedLog2(p)
		delete(counts, v)
	}
	return entropy
}
