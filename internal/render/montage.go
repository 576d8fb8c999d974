package render

import (
	"fmt"
	"image"
	"image/color"

	dimaging "github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/gonum/mat"

	"image-entropy/internal/entropy"
)

// Layout constants for the montage canvas, sized for the small research
// images this tool targets.
const (
	panelHeight   = 256
	margin        = 16
	captionHeight = 26
	barWidth      = 14
	barGap        = 8
	barTickWidth  = 52
	fontSize      = 13
)

// Panel is one cell of the montage: a rendered image, its caption, and an
// optional color bar annotated with the source data range.
type Panel struct {
	Label    string
	Image    image.Image
	ColorBar bool
	Heat     bool // colormap used, mirrored onto the bar

	// Min and Max are the data range behind the normalization, shown as the
	// color bar tick labels.
	Min, Max float64
}

// Panels expands a method result into its display panels: the input image,
// the greyscale conversion, then one panel per artifact. Methods with no
// visual output produce no panels.
func Panels(res *entropy.Result) []Panel {
	var panels []Panel
	if res.Color != nil {
		panels = append(panels, Panel{Label: "Input Image", Image: res.Color})
	}
	if res.Grey != nil {
		d := res.Grey.Dense()
		img, lo, hi := renderDense(d, false)
		panels = append(panels, Panel{Label: "Greyscale Image", Image: img, Min: lo, Max: hi})
	}
	for _, a := range res.Artifacts {
		heat := a.Hints.Has(entropy.HintForceColor)
		img, lo, hi := renderDense(a.Data, heat)
		panels = append(panels, Panel{
			Label:    a.Label,
			Image:    img,
			ColorBar: a.Hints.Has(entropy.HintColorBar),
			Heat:     heat,
			Min:      lo,
			Max:      hi,
		})
	}
	return panels
}

// Compose lays the panels out on a single dark row and returns the montage.
// The caller should skip rendering entirely when there are no panels.
func Compose(panels []Panel) image.Image {
	resized := make([]image.Image, len(panels))
	width := margin
	for i, p := range panels {
		resized[i] = dimaging.Resize(p.Image, 0, panelHeight, dimaging.Lanczos)
		width += resized[i].Bounds().Dx() + margin
		if p.ColorBar {
			width += barGap + barWidth + barTickWidth
		}
	}
	height := margin + panelHeight + captionHeight + margin

	dc := gg.NewContext(width, height)
	dc.SetFontFace(captionFace)
	dc.SetRGB(0.07, 0.07, 0.09)
	dc.Clear()

	x := margin
	for i, p := range panels {
		img := resized[i]
		w := img.Bounds().Dx()
		dc.DrawImage(img, x, margin)

		dc.SetRGB(0.92, 0.92, 0.92)
		dc.DrawStringAnchored(p.Label, float64(x+w/2), float64(margin+panelHeight+captionHeight/2), 0.5, 0.35)

		x += w
		if p.ColorBar {
			drawColorBar(dc, x+barGap, margin, p)
			x += barGap + barWidth + barTickWidth
		}
		x += margin
	}
	return dc.Image()
}

// Save writes the montage to a PNG file.
func Save(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write montage: %w", err)
	}
	return nil
}

// drawColorBar paints the vertical colormap strip with the panel's data
// range as tick labels, maximum at the top.
func drawColorBar(dc *gg.Context, x, y int, p Panel) {
	for row := 0; row < panelHeight; row++ {
		t := 1 - float64(row)/float64(panelHeight-1)
		var c color.Color
		if p.Heat {
			c = Heat(t)
		} else {
			c = Grey(t)
		}
		r, g, b, _ := c.RGBA()
		dc.SetRGB255(int(r>>8), int(g>>8), int(b>>8))
		dc.DrawRectangle(float64(x), float64(y+row), barWidth, 1)
		dc.Fill()
	}

	dc.SetRGB(0.92, 0.92, 0.92)
	tx := float64(x + barWidth + 4)
	dc.DrawStringAnchored(fmt.Sprintf("%.4g", p.Max), tx, float64(y)+fontSize/2.0, 0, 0.35)
	dc.DrawStringAnchored(fmt.Sprintf("%.4g", p.Min), tx, float64(y+panelHeight)-fontSize/2.0, 0, 0.35)
}

// renderDense normalizes a float matrix to [0, 1] over its min/max range
// and renders it with the greyscale ramp or the heat colormap. A flat matrix
// (max == min) renders as the low end of the ramp.
func renderDense(m *mat.Dense, heat bool) (image.Image, float64, float64) {
	rows, cols := m.Dims()
	lo, hi := mat.Min(m), mat.Max(m)
	span := hi - lo

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			t := 0.0
			if span > 0 {
				t = (m.At(y, x) - lo) / span
			}
			if heat {
				img.Set(x, y, Heat(t))
			} else {
				img.Set(x, y, Grey(t))
			}
		}
	}
	return img, lo, hi
}

// captionFace is the caption typeface, falling back to the fixed bitmap
// face if the embedded font fails to parse.
var captionFace font.Face = loadCaptionFace()

func loadCaptionFace() font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
