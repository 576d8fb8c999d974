package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// heatStops are the keypoints of the jet-style colormap, blended pairwise in
// Lab space so the perceived brightness ramps smoothly.
var heatStops = []colorful.Color{
	{R: 0.00, G: 0.00, B: 0.50}, // dark blue
	{R: 0.00, G: 0.25, B: 1.00}, // blue
	{R: 0.00, G: 0.90, B: 0.90}, // cyan
	{R: 1.00, G: 0.95, B: 0.00}, // yellow
	{R: 1.00, G: 0.10, B: 0.00}, // red
	{R: 0.50, G: 0.00, B: 0.00}, // dark red
}

// Heat maps a normalized value t in [0, 1] onto the heat colormap.
// Inputs outside the range clamp to the end colors.
func Heat(t float64) color.Color {
	if t <= 0 {
		return heatStops[0].Clamped()
	}
	if t >= 1 {
		return heatStops[len(heatStops)-1].Clamped()
	}
	seg := t * float64(len(heatStops)-1)
	i := int(seg)
	return heatStops[i].BlendLab(heatStops[i+1], seg-float64(i)).Clamped()
}

// Grey maps a normalized value t in [0, 1] onto the greyscale ramp.
func Grey(t float64) color.Color {
	if t <= 0 {
		return color.Gray{Y: 0}
	}
	if t >= 1 {
		return color.Gray{Y: 255}
	}
	return color.Gray{Y: uint8(t*255 + 0.5)}
}
