package grid

import "gonum.org/v1/gonum/mat"

// Hist256 counts grid values into 256 one-unit bins covering [0, 256).
//
// Values outside that range are not counted, matching a fixed-range
// histogram over the 8-bit intensity domain: a 16-bit source whose values
// exceed 255 simply contributes no mass for those pixels. Callers that need
// every pixel accounted for must rescale to 8-bit first.
func Hist256(g *Int) [256]int {
	var hist [256]int
	for _, v := range g.data {
		if v >= 0 && v < 256 {
			hist[v]++
		}
	}
	return hist
}

// JointCounts builds the 2D histogram of (a, b) value pairs with one bin per
// integer value on each axis, spanning [-bound, bound] inclusive.
//
// The result is a (2*bound+1, 2*bound+1) count matrix where row index maps
// the a value (row = a+bound) and column index maps the b value
// (col = b+bound). Both grids must have the same shape, and every element
// must lie within [-bound, bound]; the caller is expected to have validated
// the bound (see the delentropy range check), so an out-of-range element
// panics as a programming error rather than corrupting a neighboring bin.
func JointCounts(a, b *Int, bound int) *mat.Dense {
	if a.Len() != b.Len() {
		panic("grid: joint histogram inputs differ in size")
	}
	n := 2*bound + 1
	counts := mat.NewDense(n, n, nil)
	for i := range a.data {
		row := a.data[i] + bound
		col := b.data[i] + bound
		counts.Set(row, col, counts.At(row, col)+1)
	}
	return counts
}
