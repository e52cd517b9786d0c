package imagepkg

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/youruser/shotgen/internal/util"
)

// Writer persists a finished render.
type Writer interface {
	Write(path string, img image.Image) error
}

// EncodePNG writes img as a best-compression PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

// PNGWriter writes renders as PNG files, creating parent directories on demand.
// Files are written to a temporary name and renamed, so a failed encode never
// leaves a truncated output behind.
type PNGWriter struct{}

func (PNGWriter) Write(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := util.EnsureDir(dir); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".shotgen-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := EncodePNG(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
