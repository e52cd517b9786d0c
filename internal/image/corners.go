package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// ClampRadius limits radius to half the shorter side of a w×h rectangle.
func ClampRadius(w, h, radius int) int {
	return max(0, min(radius, w/2, h/2))
}

// RoundedMask rasterizes an antialiased rounded rectangle covering w×h.
// Inside is 0xff, outside 0.
func RoundedMask(w, h, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return mask
	}
	fw, fh := float32(w), float32(h)
	r := float32(ClampRadius(w, h, radius))
	k := r * (1 - kappa)

	z := vector.NewRasterizer(w, h)
	z.MoveTo(r, 0)
	z.LineTo(fw-r, 0)
	z.CubeTo(fw-k, 0, fw, k, fw, r)
	z.LineTo(fw, fh-r)
	z.CubeTo(fw, fh-k, fw-k, fh, fw-r, fh)
	z.LineTo(r, fh)
	z.CubeTo(k, fh, 0, fh-k, 0, fh-r)
	z.LineTo(0, r)
	z.CubeTo(0, k, k, 0, r, 0)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// RoundCorners intersects img's alpha with a rounded-rectangle mask, so
// transparency already present in img is kept.
func RoundCorners(img image.Image, radius int) *image.NRGBA {
	dst := imaging.Clone(img)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if radius <= 0 || w == 0 || h == 0 {
		return dst
	}
	mask := RoundedMask(w, h, radius)
	for y := 0; y < h; y++ {
		px := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		m := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := 0; x < w; x++ {
			a := uint32(px[x*4+3])
			px[x*4+3] = uint8((a*uint32(m[x]) + 127) / 255)
		}
	}
	return dst
}
