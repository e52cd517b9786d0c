package imagepkg

import (
	"context"
	"image"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/youruser/shotgen/internal/content"
	"github.com/youruser/shotgen/internal/device"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// Style holds the colours shared by every screen.
type Style struct {
	GradientStart color.NRGBA
	GradientEnd   color.NRGBA
	Title         color.NRGBA
	Subtitle      color.NRGBA
}

// DefaultStyle is the blue-to-purple brand gradient with white titles.
func DefaultStyle() Style {
	return Style{
		GradientStart: color.NRGBA{R: 37, G: 99, B: 235, A: 0xff},  // #2563eb
		GradientEnd:   color.NRGBA{R: 147, G: 51, B: 234, A: 0xff}, // #9333ea
		Title:         color.NRGBA{R: 255, G: 255, B: 255, A: 0xff},
		Subtitle:      color.NRGBA{R: 220, G: 220, B: 220, A: 0xff},
	}
}

const (
	defaultQRSize   = 240
	defaultQRMargin = 48
)

// Options configures a Compositor. Zero values fall back to defaults.
type Options struct {
	Style    *Style
	Fonts    *FontResolver
	QRSize   int
	QRMargin int
	Logger   *slog.Logger
}

// Compositor renders one store screenshot from a profile, a catalog entry and
// a raw capture. It holds no per-render state and is safe for concurrent use.
type Compositor struct {
	style    Style
	fonts    *FontResolver
	qrSize   int
	qrMargin int
	logger   *slog.Logger
}

// NewCompositor applies defaults to opts.
func NewCompositor(opts Options) *Compositor {
	c := &Compositor{
		style:    DefaultStyle(),
		fonts:    opts.Fonts,
		qrSize:   opts.QRSize,
		qrMargin: opts.QRMargin,
		logger:   opts.Logger,
	}
	if opts.Style != nil {
		c.style = *opts.Style
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.fonts == nil {
		c.fonts = NewFontResolver(c.logger)
	}
	if c.qrSize <= 0 {
		c.qrSize = defaultQRSize
	}
	if c.qrMargin <= 0 {
		c.qrMargin = defaultQRMargin
	}
	return c
}

// Render loads the capture at rawPath and composes it. A missing capture
// yields ErrSourceMissing.
func (c *Compositor) Render(ctx context.Context, p device.Profile, item content.Item, rawPath string) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := LoadSource(rawPath)
	if err != nil {
		return nil, err
	}
	return c.Compose(p, item, src)
}

// Compose runs the fixed pipeline: background, text, optional QR badge,
// screenshot (trim, crop, scale, round, shadow), paste, flatten.
// The result is exactly CanvasWidth×CanvasHeight and fully opaque.
func (c *Compositor) Compose(p device.Profile, item content.Item, src image.Image) (*image.RGBA, error) {
	canvas := Gradient(p.CanvasWidth, p.CanvasHeight, c.style.GradientStart, c.style.GradientEnd)

	c.drawText(canvas, p, item)

	if item.QRText != "" {
		qr, err := GenerateQRImage(item.QRText, c.qrSize)
		if err != nil {
			return nil, err
		}
		canvas = imaging.Paste(canvas, qr, image.Pt(p.CanvasWidth-c.qrMargin-c.qrSize, c.qrMargin))
	}

	shot := PrepareScreenshot(p, src)
	size := shot.Bounds().Size()
	layer, origin := DropShadow(shot, p.Shadow)
	at := PastePosition(p, size).Sub(origin)
	draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(layer.Bounds().Size())}, layer, image.Point{}, draw.Over)

	return Flatten(canvas), nil
}

// PrepareScreenshot trims, crops, scales and rounds a raw capture.
func PrepareScreenshot(p device.Profile, src image.Image) *image.NRGBA {
	shot := AutoTrim(src)
	shot = ContentCrop(shot, p.ContentCrop)
	shot = ScaleToWidth(shot, p.TargetWidth(), p.MaxScreenshotHeight())
	return RoundCorners(shot, p.CornerRadius)
}

// PastePosition centers a screenshot of the given size horizontally and rests
// its bottom edge BottomMargin pixels above the canvas bottom.
func PastePosition(p device.Profile, size image.Point) image.Point {
	return image.Pt(floorDiv(p.CanvasWidth-size.X, 2), p.CanvasHeight-size.Y-p.BottomMargin)
}

// TitleLines lays out the title for p with the given face.
func TitleLines(face font.Face, p device.Profile, title string) []Line {
	return LayoutLines(face, p.CanvasWidth, p.TitleStartY, p.LineSpacing, title)
}

func (c *Compositor) drawText(canvas *image.NRGBA, p device.Profile, item content.Item) {
	face, name := c.fonts.Face(float64(p.TitleFontSize))
	defer face.Close()
	lines := TitleLines(face, p, item.Title)
	DrawLines(canvas, face, lines, c.style.Title)
	c.logger.Debug("title drawn", "screen", item.ID, "font", name, "lines", len(lines))

	if item.Subtitle == "" || p.SubtitleFontSize <= 0 {
		return
	}
	sub, _ := c.fonts.Face(float64(p.SubtitleFontSize))
	defer sub.Close()
	y := p.TitleStartY + len(lines)*p.LineSpacing + p.SubtitleGap
	DrawLines(canvas, sub, LayoutLines(sub, p.CanvasWidth, y, p.LineSpacing, item.Subtitle), c.style.Subtitle)
}

// Flatten composites img over opaque black and drops the alpha channel.
func Flatten(img *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}
