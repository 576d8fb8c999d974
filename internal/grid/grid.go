package grid

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"
)

// Int is a two-dimensional grid of integers backed by a single row-major
// slice. It holds pixel intensities (0-255 for 8-bit sources, 0-65535 for
// 16-bit greyscale sources) as well as signed derived values such as
// gradients.
//
// The zero value is an empty grid; use NewInt or FromRows to build one with
// a shape. Methods never mutate their receiver unless documented, and the
// entropy methods treat decoded intensity grids as read-only, cloning before
// any in-place work.
type Int struct {
	w, h int
	data []int
}

// NewInt returns a zero-filled grid of the given width and height.
// Non-positive dimensions yield an empty grid.
func NewInt(w, h int) *Int {
	if w <= 0 || h <= 0 {
		return &Int{}
	}
	return &Int{w: w, h: h, data: make([]int, w*h)}
}

// FromRows builds a grid from row-major rows, copying the values.
// All rows must have the same length; ragged input panics since it can only
// come from a programming error in the caller.
func FromRows(rows [][]int) *Int {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Int{}
	}
	g := NewInt(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.w {
			panic(fmt.Sprintf("grid: ragged input, row %d has %d values, want %d", y, len(row), g.w))
		}
		copy(g.data[y*g.w:(y+1)*g.w], row)
	}
	return g
}

// Width returns the number of columns.
func (g *Int) Width() int { return g.w }

// Height returns the number of rows.
func (g *Int) Height() int { return g.h }

// Len returns the number of cells (width * height).
func (g *Int) Len() int { return len(g.data) }

// At returns the value at column x, row y.
func (g *Int) At(x, y int) int { return g.data[y*g.w+x] }

// Set stores v at column x, row y.
func (g *Int) Set(x, y, v int) { g.data[y*g.w+x] = v }

// Clone returns a deep copy of the grid.
func (g *Int) Clone() *Int {
	c := &Int{w: g.w, h: g.h, data: make([]int, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Floats returns a fresh row-major float64 copy of the grid values, in the
// layout the gonum summary statistics expect.
func (g *Int) Floats() []float64 {
	out := make([]float64, len(g.data))
	for i, v := range g.data {
		out[i] = float64(v)
	}
	return out
}

// Dense returns the grid as a (height, width) float matrix.
func (g *Int) Dense() *mat.Dense {
	if g.Len() == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(g.h, g.w, g.Floats())
}

// Gray renders the grid as an 8-bit greyscale image, clamping each value to
// [0, 255]. Callers holding 16-bit data that should be preserved must
// rescale before calling; this is the entry point for the 8-bit convolution
// filters, not for display normalization.
func (g *Int) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.w, g.h))
	for i, v := range g.data {
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		img.Pix[i] = uint8(v)
	}
	return img
}

// MaxAbs returns the largest absolute value in the grid, 0 for an empty one.
func (g *Int) MaxAbs() int {
	m := 0
	for _, v := range g.data {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

// MinMax returns the smallest and largest values in the grid.
// An empty grid reports (0, 0).
func (g *Int) MinMax() (int, int) {
	if len(g.data) == 0 {
		return 0, 0
	}
	lo, hi := g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Sum returns the sum of all cell values.
func (g *Int) Sum() int {
	s := 0
	for _, v := range g.data {
		s += v
	}
	return s
}
