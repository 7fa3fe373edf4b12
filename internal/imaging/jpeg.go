package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
)

// jpegQuality is the compression applied to stored label images,
// equivalent to a 0.8 quality factor.
const jpegQuality = 80

// EncodeJPEG compresses img for storage alongside a medication record.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
