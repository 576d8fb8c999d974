package entropy

import (
	"testing"

	"image-entropy/internal/grid"
)

func TestKolmogorov1D_ConstantCompressesWell(t *testing.T) {
	res, err := Kolmogorov1D(Input{Grey: constantGrid(64, 64, 170)}, DefaultParams())
	if err != nil {
		t.Fatalf("Kolmogorov1D failed: %v", err)
	}

	ent, _ := res.Stat("entropy")
	if ent.Value <= 0 || ent.Value > 2 {
		t.Errorf("bits per pixel for a constant image: got %v, want (0, 2]", ent.Value)
	}

	raw, _ := res.Stat("raw bytes")
	if raw.Value != 64*64 {
		t.Errorf("raw bytes: got %v, want %d", raw.Value, 64*64)
	}

	if res.Color != nil || res.Grey != nil || res.Artifacts != nil {
		t.Error("expected an all-nil display triple")
	}
}

func TestKolmogorov1D_Deterministic(t *testing.T) {
	g := grid.NewInt(32, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			g.Set(x, y, (x*53+y*97)%256)
		}
	}

	a, err := Kolmogorov1D(Input{Grey: g}, DefaultParams())
	if err != nil {
		t.Fatalf("Kolmogorov1D failed: %v", err)
	}
	b, err := Kolmogorov1D(Input{Grey: g}, DefaultParams())
	if err != nil {
		t.Fatalf("Kolmogorov1D failed: %v", err)
	}

	entA, _ := a.Stat("entropy")
	entB, _ := b.Stat("entropy")
	if entA.Value != entB.Value {
		t.Errorf("estimate not deterministic: %v vs %v", entA.Value, entB.Value)
	}
}

func TestKolmogorov1D_EmptyImage(t *testing.T) {
	if _, err := Kolmogorov1D(Input{Grey: grid.NewInt(0, 0)}, DefaultParams()); err == nil {
		t.Error("expected an error for an empty image")
	}
}
