package imagepkg

import (
	"image"
	"image/color"
)

// Gradient returns an opaque w×h canvas fading from start at the top to end
// at the bottom. Row y uses t = y/h; the colour is computed once per row.
func Gradient(w, h int, start, end color.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	row := make([]uint8, w*4)
	for y := 0; y < h; y++ {
		c := lerpColor(start, end, float64(y)/float64(h))
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = 0xff
		}
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+len(row)], row)
	}
	return dst
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{R: lerp(a.R, b.R, t), G: lerp(a.G, b.G, t), B: lerp(a.B, b.B, t), A: 0xff}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
