package imaging

import (
	"image"

	dimaging "github.com/disintegration/imaging"

	"image-entropy/internal/grid"
)

// Intensity converts a decoded image into the integer intensity grid the
// entropy methods consume.
//
// Parameters:
//   - img: The decoded source image, color or greyscale, 8-bit or 16-bit.
//
// Returns:
//   - *grid.Int: A (width, height) grid of pixel intensities. 8-bit sources
//     produce values in [0, 255]; 16-bit greyscale sources keep their native
//     [0, 65535] range.
//
// # Greyscale Conversion
//
// Color sources are converted with the ITU-R BT.601 luminance weights
// (0.299*R + 0.587*G + 0.114*B) via the disintegration/imaging Grayscale
// filter, producing 8-bit intensities regardless of the source color depth.
//
// Greyscale sources are passed through untouched: *image.Gray keeps its
// 8-bit samples and *image.Gray16 keeps its full 16-bit samples. Preserving
// the native 16-bit range is deliberate; the gradient-histogram methods
// validate their 8-bit dynamic-range assumption against real sample values,
// not against values that were silently rescaled.
func Intensity(img image.Image) *grid.Int {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := grid.NewInt(w, h)

	switch im := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			row := im.Pix[y*im.Stride : y*im.Stride+w]
			for x, v := range row {
				out.Set(x, y, int(v))
			}
		}
	case *image.Gray16:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := im.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y
				out.Set(x, y, int(v))
			}
		}
	default:
		gray := dimaging.Grayscale(img)
		for y := 0; y < h; y++ {
			// Grayscale output is NRGBA with R == G == B.
			row := gray.Pix[y*gray.Stride : y*gray.Stride+w*4]
			for x := 0; x < w; x++ {
				out.Set(x, y, int(row[x*4]))
			}
		}
	}
	return out
}
