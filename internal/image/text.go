package imagepkg

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Line is one laid-out line of text. (X, Y) is the top-left of the line box.
type Line struct {
	Text  string
	X     int
	Y     int
	Width int
}

// LayoutLines splits text on '\n' and centers each line on canvasWidth.
// Lines start at startY and advance by lineSpacing.
func LayoutLines(face font.Face, canvasWidth, startY, lineSpacing int, text string) []Line {
	parts := strings.Split(text, "\n")
	lines := make([]Line, 0, len(parts))
	y := startY
	for _, p := range parts {
		w := font.MeasureString(face, p).Ceil()
		lines = append(lines, Line{Text: p, X: floorDiv(canvasWidth-w, 2), Y: y, Width: w})
		y += lineSpacing
	}
	return lines
}

// DrawLines paints lines onto dst. Each line's Y is the top of the text, so
// the baseline sits one ascent lower.
func DrawLines(dst draw.Image, face font.Face, lines []Line, col color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for _, l := range lines {
		d.Dot = fixed.P(l.X, l.Y+ascent)
		d.DrawString(l.Text)
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
