package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/youruser/shotgen/internal/device"
)

// AutoTrim crops img to the smallest rectangle holding every pixel with
// non-zero alpha. A fully transparent image comes back unchanged.
func AutoTrim(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	box, ok := alphaBounds(src)
	if !ok || box == src.Bounds() {
		return src
	}
	return imaging.Crop(src, box)
}

// alphaBounds scans a zero-origin NRGBA image for non-transparent pixels.
func alphaBounds(img *image.NRGBA) (image.Rectangle, bool) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// ContentCrop removes the fractional border c from img. A crop that would
// leave an empty or inverted region is ignored and img is returned unchanged.
func ContentCrop(img image.Image, c device.Crop) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	left := int(float64(w) * c.Left)
	right := int(float64(w) * (1 - c.Right))
	top := int(float64(h) * c.Top)
	bottom := int(float64(h) * (1 - c.Bottom))
	if right <= left || bottom <= top {
		return src
	}
	r := image.Rect(left, top, right, bottom)
	if r == src.Bounds() {
		return src
	}
	return imaging.Crop(src, r)
}
