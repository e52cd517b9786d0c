package imagepkg

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{5, 2, 2},
		{4, 2, 2},
		{-5, 2, -3},
		{-4, 2, -2},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLayoutLines(t *testing.T) {
	face := basicfont.Face7x13 // 7px advance per glyph
	lines := LayoutLines(face, 100, 50, 20, "ab\nabcd")
	want := []Line{
		{Text: "ab", X: 43, Y: 50, Width: 14},
		{Text: "abcd", X: 36, Y: 70, Width: 28},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestLayoutLinesWiderThanCanvas(t *testing.T) {
	lines := LayoutLines(basicfont.Face7x13, 10, 0, 20, "abcdefg")
	if lines[0].X != -20 {
		t.Fatalf("X = %d, want -20", lines[0].X)
	}
}

func TestLayoutLinesKeepsEmptyLines(t *testing.T) {
	lines := LayoutLines(basicfont.Face7x13, 100, 0, 30, "a\n\nb")
	if len(lines) != 3 || lines[2].Y != 60 {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestDrawLinesStaysInLineBox(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	face := basicfont.Face7x13
	line := Line{Text: "H", X: 10, Y: 5, Width: 7}
	DrawLines(dst, face, []Line{line}, color.White)

	box := image.Rect(line.X, line.Y, line.X+7, line.Y+13)
	painted := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if dst.NRGBAAt(x, y).A == 0 {
				continue
			}
			if !image.Pt(x, y).In(box) {
				t.Fatalf("pixel (%d,%d) painted outside %v", x, y, box)
			}
			painted++
		}
	}
	if painted == 0 {
		t.Fatal("nothing was drawn")
	}
}
