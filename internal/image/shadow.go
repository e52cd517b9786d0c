package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/youruser/shotgen/internal/device"
	"golang.org/x/image/draw"
)

// DropShadow places img over a blurred silhouette of its own alpha channel.
//
// The result is padded by twice the blur radius on each side so the blur is
// not clipped. origin is the position of img's top-left corner inside the
// result; pixels where img is opaque are copied unchanged.
func DropShadow(img image.Image, spec device.ShadowSpec) (out *image.NRGBA, origin image.Point) {
	src := imaging.Clone(img)
	if !spec.Enabled() {
		return src, image.Point{}
	}
	pad := 2 * spec.BlurRadius
	size := src.Bounds().Size()
	w, h := size.X+2*pad, size.Y+2*pad
	origin = image.Pt(pad, pad)

	layer := imaging.Paste(imaging.New(w, h, color.NRGBA{}), silhouette(src, spec.Opacity), origin)
	blurred := imaging.Blur(layer, float64(spec.BlurRadius))

	out = imaging.Paste(imaging.New(w, h, color.NRGBA{}), blurred, image.Pt(spec.OffsetX, spec.OffsetY))
	draw.Draw(out, image.Rectangle{Min: origin, Max: origin.Add(size)}, src, image.Point{}, draw.Over)
	return out, origin
}

// silhouette returns a black layer whose alpha is src's alpha scaled by opacity.
func silhouette(src *image.NRGBA, opacity uint8) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w*4]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			d[x*4+3] = uint8((uint32(s[x*4+3])*uint32(opacity) + 127) / 255)
		}
	}
	return dst
}
