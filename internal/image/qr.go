package imagepkg

import (
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRImage returns a size×size QR code for text, for pasting onto a canvas.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr code for %q: %w", text, err)
	}
	return q.Image(size), nil
}
