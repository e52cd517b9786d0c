package imagepkg

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ScaledSize computes the output size for a sw×sh source scaled to
// targetWidth. Height is round(sh·targetWidth/sw). When maxHeight > 0 and the
// height exceeds it, the height is capped and the width recomputed.
func ScaledSize(sw, sh, targetWidth, maxHeight int) (int, int) {
	w := targetWidth
	h := int(math.Round(float64(sh) * float64(w) / float64(sw)))
	if maxHeight > 0 && h > maxHeight {
		h = maxHeight
		w = int(math.Round(float64(sw) * float64(h) / float64(sh)))
	}
	return max(w, 1), max(h, 1)
}

// ScaleToWidth resizes img with Lanczos resampling, keeping its aspect ratio.
func ScaleToWidth(img image.Image, targetWidth, maxHeight int) *image.NRGBA {
	sw, sh := img.Bounds().Dx(), img.Bounds().Dy()
	if sw == 0 || sh == 0 || targetWidth <= 0 {
		return imaging.Clone(img)
	}
	w, h := ScaledSize(sw, sh, targetWidth, maxHeight)
	if w == sw && h == sh {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
