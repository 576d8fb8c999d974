package entropy

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"

	"image-entropy/internal/grid"
)

// Spectral2D computes the entropy of the 2D Fourier magnitude spectrum, the
// frequency-domain counterpart of the intensity methods.
//
// The coefficient magnitudes of the full 2D FFT, normalized by their total,
// form the distribution; entropy is the base-2 Shannon sum over it. The
// conjugate symmetry of a real input is left intact rather than folded, so
// symmetric coefficient pairs carry equal mass.
//
// A constant image concentrates all magnitude in the DC coefficient, a
// single outcome, and reports entropy 0. So does an all-zero image (no
// magnitude at all).
//
// The "Log Spectrum" artifact holds log2(1+|F|) with the DC coefficient at
// the array origin.
func Spectral2D(in Input, _ Params) (*Result, error) {
	g := in.Grey

	rows := make([][]float64, g.Height())
	for y := range rows {
		rows[y] = make([]float64, g.Width())
		for x := range rows[y] {
			rows[y][x] = float64(g.At(x, y))
		}
	}
	freq := fft.FFT2Real(rows)

	total := 0.0
	logMag := mat.NewDense(g.Height(), g.Width(), nil)
	for y := range freq {
		for x := range freq[y] {
			m := cmplx.Abs(freq[y][x])
			total += m
			logMag.Set(y, x, math.Log2(1+m))
		}
	}

	entropy := 0.0
	if total > 0 {
		for y := range freq {
			for x := range freq[y] {
				p := cmplx.Abs(freq[y][x]) / total
				entropy += p * -grid.MaskedLog2(p)
			}
		}
	}

	return &Result{
		Color: in.Color,
		Grey:  g,
		Artifacts: []Artifact{
			{Label: "Log Spectrum", Data: logMag, Hints: HintColorBar | HintForceColor},
		},
		Stats: []Stat{
			{Name: "entropy", Value: entropy},
			{Name: "entropy ratio", Value: entropy / 8.0},
		},
	}, nil
}
