package driven

import (
	"context"
	"image"
)

// RecognitionOptions configure a text recognition request.
type RecognitionOptions struct {
	// Accurate prefers recognition quality over speed.
	Accurate bool

	// LanguageCorrection enables dictionary-based correction of the
	// raw recognition output.
	LanguageCorrection bool

	// Language constrains recognition to a single language,
	// as an ISO 639-2 code such as "eng".
	Language string
}

// TextRecognizer converts an image into ordered lines of text.
// Callers must pass upright pixels; recognition quality degrades
// unpredictably on rotated input.
type TextRecognizer interface {
	// Recognize returns the recognized lines in reading order.
	// An empty slice is a valid result for a label with no legible text.
	Recognize(ctx context.Context, img image.Image, opts RecognitionOptions) ([]string, error)
}
