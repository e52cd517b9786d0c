package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
)

// ErrSourceMissing is returned when a raw capture does not exist on disk.
var ErrSourceMissing = errors.New("raw source not found")

// LoadSource decodes the raw capture at path into a zero-origin NRGBA image.
func LoadSource(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("stat source %s: %w", path, err)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode source %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}
