package entropy

import (
	"bytes"
	"errors"

	"github.com/pointlander/compress"
)

// Kolmogorov1D estimates entropy as compressibility: the intensity grid,
// serialized row-major into bytes, is run through an adaptive arithmetic
// coder and the achieved bits per pixel stand in for the entropy.
//
// Values are clamped to [0, 255] during serialization, so 16-bit sources are
// measured at 8-bit precision. The estimate is 8 * compressed/raw bytes; an
// incompressible input can score slightly above 8 bits per pixel because of
// coder overhead, which is reported as measured rather than clamped.
//
// No display output; statistics only, including the raw and compressed byte
// counts as diagnostics.
func Kolmogorov1D(in Input, _ Params) (*Result, error) {
	g := in.Grey
	if g.Len() == 0 {
		return nil, errors.New("empty image")
	}

	raw := make([]byte, g.Len())
	i := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := g.At(x, y)
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			raw[i] = byte(v)
			i++
		}
	}

	var compressed bytes.Buffer
	compress.Mark1Compress1(raw, &compressed)
	estimate := 8 * float64(compressed.Len()) / float64(len(raw))

	return &Result{
		Stats: []Stat{
			{Name: "entropy", Value: estimate},
			{Name: "entropy ratio", Value: estimate / 8.0},
			{Name: "raw bytes", Value: float64(len(raw))},
			{Name: "compressed bytes", Value: float64(compressed.Len())},
		},
	}, nil
}
