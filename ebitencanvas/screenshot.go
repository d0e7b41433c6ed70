package ebitencanvas

import (
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scenegraph/export"
)

// Screenshot writes the rendered frame in screen as a PNG file under dir,
// named after label, and returns its path. Call it at the end of Draw.
func Screenshot(screen *ebiten.Image, dir, label string, now time.Time) (string, error) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	f, err := export.Create(dir, label, "png", now)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	if err := png.Encode(f, unpremultiply(pixels, w, h)); err != nil {
		f.Close()
		return "", fmt.Errorf("screenshot: encode %s: %w", f.Name(), err)
	}
	return f.Name(), f.Close()
}

// unpremultiply converts premultiplied RGBA pixels, as read back from the
// GPU, into a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
