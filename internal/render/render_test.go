package render

import (
	"image"
	"image/color"
	"testing"

	"gonum.org/v1/gonum/mat"

	"image-entropy/internal/entropy"
	"image-entropy/internal/grid"
)

func TestHeat_Endpoints(t *testing.T) {
	r0, g0, b0, _ := Heat(0).RGBA()
	if b0 <= r0 || b0 <= g0 {
		t.Errorf("Heat(0) = (%d, %d, %d), want blue dominant", r0>>8, g0>>8, b0>>8)
	}

	r1, g1, b1, _ := Heat(1).RGBA()
	if r1 <= b1 || r1 <= g1 {
		t.Errorf("Heat(1) = (%d, %d, %d), want red dominant", r1>>8, g1>>8, b1>>8)
	}

	// Out-of-range inputs clamp to the end colors.
	if Heat(-3) != Heat(0) || Heat(7) != Heat(1) {
		t.Error("out-of-range inputs should clamp")
	}
}

func TestGrey_Ramp(t *testing.T) {
	if Grey(0) != (color.Gray{Y: 0}) {
		t.Errorf("Grey(0): got %v", Grey(0))
	}
	if Grey(1) != (color.Gray{Y: 255}) {
		t.Errorf("Grey(1): got %v", Grey(1))
	}
	if Grey(0.5) != (color.Gray{Y: 128}) {
		t.Errorf("Grey(0.5): got %v", Grey(0.5))
	}
}

func greyResult(w, h int) *entropy.Result {
	g := grid.NewInt(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, (x+y)%256)
		}
	}
	return &entropy.Result{Grey: g}
}

func TestPanels_CountsAndBars(t *testing.T) {
	res := greyResult(32, 32)
	res.Color = image.NewRGBA(image.Rect(0, 0, 32, 32))
	res.Artifacts = []entropy.Artifact{
		{Label: "Gradient", Data: mat.NewDense(30, 30, nil)},
		{Label: "Deldensity", Data: mat.NewDense(9, 9, nil),
			Hints: entropy.HintColorBar | entropy.HintForceColor},
	}

	panels := Panels(res)
	if len(panels) != 4 {
		t.Fatalf("panels: got %d, want 4", len(panels))
	}

	if panels[0].Label != "Input Image" || panels[1].Label != "Greyscale Image" {
		t.Errorf("leading labels: got %q, %q", panels[0].Label, panels[1].Label)
	}
	if panels[2].ColorBar {
		t.Error("hint-less artifact should not request a bar")
	}
	if !panels[3].ColorBar || !panels[3].Heat {
		t.Error("deldensity panel should carry bar and heat colormap")
	}
}

func TestPanels_EmptyResult(t *testing.T) {
	if panels := Panels(&entropy.Result{}); len(panels) != 0 {
		t.Errorf("scalar-only result: got %d panels, want 0", len(panels))
	}
}

func TestPanels_RecordsDataRange(t *testing.T) {
	res := &entropy.Result{
		Artifacts: []entropy.Artifact{
			{Label: "Map", Data: mat.NewDense(2, 2, []float64{-1.5, 0, 2, 3.5})},
		},
	}
	p := Panels(res)[0]
	if p.Min != -1.5 || p.Max != 3.5 {
		t.Errorf("range: got (%v, %v), want (-1.5, 3.5)", p.Min, p.Max)
	}
}

func TestCompose_Dimensions(t *testing.T) {
	panels := Panels(greyResult(64, 32))
	img := Compose(panels)

	wantH := margin + panelHeight + captionHeight + margin
	if got := img.Bounds().Dy(); got != wantH {
		t.Errorf("height: got %d, want %d", got, wantH)
	}

	// One 2:1 panel resized to 256 high is 512 wide, plus margins.
	wantW := margin + 512 + margin
	if got := img.Bounds().Dx(); got != wantW {
		t.Errorf("width: got %d, want %d", got, wantW)
	}
}

func TestCompose_BarWidensCanvas(t *testing.T) {
	data := mat.NewDense(32, 32, nil)
	plain := Compose(Panels(&entropy.Result{
		Artifacts: []entropy.Artifact{{Label: "Map", Data: data}},
	}))
	withBar := Compose(Panels(&entropy.Result{
		Artifacts: []entropy.Artifact{{Label: "Map", Data: data, Hints: entropy.HintColorBar}},
	}))

	want := plain.Bounds().Dx() + barGap + barWidth + barTickWidth
	if got := withBar.Bounds().Dx(); got != want {
		t.Errorf("width with bar: got %d, want %d", got, want)
	}
}

func TestRenderDense_FlatMatrix(t *testing.T) {
	img, lo, hi := renderDense(mat.NewDense(4, 4, nil), false)
	if lo != 0 || hi != 0 {
		t.Errorf("range: got (%v, %v), want (0, 0)", lo, hi)
	}
	// A flat matrix renders as the low end of the ramp, not NaN grey.
	r, g, b, _ := img.At(2, 2).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("flat cell: got (%d, %d, %d), want black", r>>8, g>>8, b>>8)
	}
}
