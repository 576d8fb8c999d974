package entropy

import (
	"errors"

	"image-entropy/internal/grid"
)

// Kapur1D selects the bi-level threshold that maximizes the sum of the
// entropies of the two intensity partitions it creates.
//
// A 256-bin intensity histogram and its cumulative distribution C(i) drive
// the scan. For every candidate threshold i within the nonzero-histogram
// range, the low partition hist[0..i]/C(i) and the high partition
// hist[i+1..]/(C(last)-C(i)) each contribute a Shannon entropy (base 2,
// zero bins excluded); the candidate with the largest sum wins. Comparison
// is strict, so the first threshold achieving the maximum is kept.
//
// The "Kapur Threshold" artifact is the image with every pixel at or above
// the threshold zeroed.
func Kapur1D(in Input, _ Params) (*Result, error) {
	g := in.Grey
	hist := grid.Hist256(g)

	var cdf [256]float64
	run := 0.0
	for i, n := range hist {
		run += float64(n)
		cdf[i] = run
	}

	first, last := -1, -1
	for i, n := range hist {
		if n > 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil, errors.New("histogram is empty: no intensity mass in the 8-bit range")
	}

	entropyMax, threshold := 0.0, 0
	for i := first; i <= last; i++ {
		entropy := 0.0
		for k := 0; k <= i; k++ {
			p := float64(hist[k]) / cdf[i]
			entropy += p * -grid.MaskedLog2(p)
		}
		highMass := cdf[last] - cdf[i]
		for k := i + 1; k < 256; k++ {
			if hist[k] == 0 {
				continue
			}
			p := float64(hist[k]) / highMass
			entropy += p * -grid.MaskedLog2(p)
		}
		if entropy > entropyMax {
			entropyMax, threshold = entropy, i
		}
	}

	thresholded := g.Clone()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) >= threshold {
				thresholded.Set(x, y, 0)
			}
		}
	}

	return &Result{
		Color: in.Color,
		Grey:  g,
		Artifacts: []Artifact{
			{Label: "Kapur Threshold", Data: thresholded.Dense()},
		},
		Stats: []Stat{
			{Name: "entropy", Value: entropyMax},
			{Name: "threshold", Value: float64(threshold)},
			{Name: "entropy ratio", Value: entropyMax / 8.0},
		},
	}, nil
}
