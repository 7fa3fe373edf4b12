// Package imaging provides the pixel-level helpers the intake pipeline
// needs: orientation normalization before recognition and JPEG
// compression of label images before persistence.
package imaging

import (
	"image"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
)

// Normalize redraws img so the recognizer receives upright pixels.
// Frames tagged OrientationUp are returned unchanged.
func Normalize(img image.Image, o domain.Orientation) image.Image {
	if img == nil || o == domain.OrientationUp {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.RGBA
	if o == domain.OrientationRotate180 {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			switch o {
			case domain.OrientationRotate90:
				dst.Set(h-1-y, x, c)
			case domain.OrientationRotate180:
				dst.Set(w-1-x, h-1-y, c)
			case domain.OrientationRotate270:
				dst.Set(y, w-1-x, c)
			}
		}
	}
	return dst
}
