package entropy

import (
	"errors"
	"math"
	"testing"

	"image-entropy/internal/grid"
)

// stepGrid builds a w x h grid whose left half holds lo and right half hi.
func stepGrid(w, h, lo, hi int) *grid.Int {
	g := grid.NewInt(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				g.Set(x, y, lo)
			} else {
				g.Set(x, y, hi)
			}
		}
	}
	return g
}

func TestDelentropy2D_ConstantImage(t *testing.T) {
	res, err := Delentropy2D(Input{Grey: constantGrid(8, 8, 200)}, DefaultParams())
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}

	// All gradients are zero: a single joint outcome with probability 1.
	ent, _ := res.Stat("entropy")
	if ent.Value != 0 {
		t.Errorf("entropy: got %v, want exactly 0", ent.Value)
	}

	// J = 0 collapses the histogram to one bin.
	r, c := res.Artifacts[1].Data.Dims()
	if r != 1 || c != 1 {
		t.Errorf("deldensity shape: got (%d, %d), want (1, 1)", r, c)
	}
}

func TestDelentropy2D_VerticalStep(t *testing.T) {
	// 6x6 step of height 100: the interior fx samples split evenly between
	// 0 and 100 with fy identically 0. Two equiprobable joint outcomes give
	// an entropy sum of 1 bit, halved to 0.5.
	res, err := Delentropy2D(Input{Grey: stepGrid(6, 6, 0, 100)}, DefaultParams())
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}

	ent, _ := res.Stat("entropy")
	if math.Abs(ent.Value-0.5) > epsilon {
		t.Errorf("entropy: got %v, want 0.5", ent.Value)
	}
}

func TestDelentropy2D_SignFlipInvariance(t *testing.T) {
	// Mirroring the step negates every gradient sample. The joint histogram
	// reflects through the origin and the entropy must not change.
	a, err := Delentropy2D(Input{Grey: stepGrid(6, 6, 0, 100)}, DefaultParams())
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}
	b, err := Delentropy2D(Input{Grey: stepGrid(6, 6, 100, 0)}, DefaultParams())
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}

	entA, _ := a.Stat("entropy")
	entB, _ := b.Stat("entropy")
	if math.Abs(entA.Value-entB.Value) > epsilon {
		t.Errorf("entropy changed under gradient negation: %v vs %v", entA.Value, entB.Value)
	}
}

func TestDelentropy2D_InvertedImageInvariance(t *testing.T) {
	g := grid.NewInt(10, 10)
	inv := grid.NewInt(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := (x*37 + y*91) % 256
			g.Set(x, y, v)
			inv.Set(x, y, 255-v)
		}
	}

	a, err := Delentropy2D(Input{Grey: g}, DefaultParams())
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}
	b, err := Delentropy2D(Input{Grey: inv}, DefaultParams())
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}

	entA, _ := a.Stat("entropy")
	entB, _ := b.Stat("entropy")
	if math.Abs(entA.Value-entB.Value) > epsilon {
		t.Errorf("entropy changed under intensity inversion: %v vs %v", entA.Value, entB.Value)
	}
}

func TestDelentropy2D_RangeViolation(t *testing.T) {
	// A 16-bit step of height 20000 produces |fx| = 20000 > 255, violating
	// the binning assumption. The typed error must surface, not a panic.
	_, err := Delentropy2D(Input{Grey: stepGrid(8, 8, 0, 20000)}, DefaultParams())
	if err == nil {
		t.Fatal("expected an error for out-of-range gradients")
	}
	if !errors.Is(err, ErrGradientRange) {
		t.Errorf("error %v does not wrap ErrGradientRange", err)
	}
}

func TestDelentropy2D_TooSmall(t *testing.T) {
	if _, err := Delentropy2D(Input{Grey: constantGrid(2, 2, 5)}, DefaultParams()); err == nil {
		t.Error("expected an error for a 2x2 image in real gradient mode")
	}
}

func TestDelentropy2D_ArtifactShapes(t *testing.T) {
	res, err := Delentropy2D(Input{Grey: stepGrid(7, 5, 0, 10)}, DefaultParams())
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}

	if len(res.Artifacts) != 2 {
		t.Fatalf("artifacts: got %d, want 2", len(res.Artifacts))
	}

	// Central differences crop the gradient map to the (H-2, W-2) interior.
	r, c := res.Artifacts[0].Data.Dims()
	if r != 3 || c != 5 {
		t.Errorf("gradient map shape: got (%d, %d), want (3, 5)", r, c)
	}

	if res.Artifacts[0].Label != "Gradient" || res.Artifacts[1].Label != "Deldensity" {
		t.Errorf("labels: got %q, %q", res.Artifacts[0].Label, res.Artifacts[1].Label)
	}
	if !res.Artifacts[1].Hints.Has(HintColorBar | HintForceColor) {
		t.Error("deldensity should request color bar and forced color")
	}
}

func TestDelentropy2D_InvertOutput(t *testing.T) {
	p := DefaultParams()
	p.InvertOutput = false
	plain, err := Delentropy2D(Input{Grey: stepGrid(6, 6, 0, 100)}, p)
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}

	p.InvertOutput = true
	inverted, err := Delentropy2D(Input{Grey: stepGrid(6, 6, 0, 100)}, p)
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}

	// ~x = -x-1 per display cell; the entropy itself is untouched.
	got := inverted.Artifacts[0].Data.At(0, 1)
	want := float64(^int(plain.Artifacts[0].Data.At(0, 1)))
	if got != want {
		t.Errorf("inverted gradient cell: got %v, want %v", got, want)
	}

	entA, _ := plain.Stat("entropy")
	entB, _ := inverted.Stat("entropy")
	if entA.Value != entB.Value {
		t.Errorf("inversion changed entropy: %v vs %v", entA.Value, entB.Value)
	}
}

func TestDelentropy2D_KernelMode(t *testing.T) {
	p := DefaultParams()
	p.GradientMode = GradientKernel

	res, err := Delentropy2D(Input{Grey: constantGrid(6, 6, 50)}, p)
	if err != nil {
		t.Fatalf("Delentropy2D failed: %v", err)
	}

	// Kernel mode keeps the full image shape.
	r, c := res.Artifacts[0].Data.Dims()
	if r != 6 || c != 6 {
		t.Errorf("gradient map shape: got (%d, %d), want (6, 6)", r, c)
	}

	ent, _ := res.Stat("entropy")
	if ent.Value != 0 {
		t.Errorf("entropy of constant image: got %v, want 0", ent.Value)
	}
}
