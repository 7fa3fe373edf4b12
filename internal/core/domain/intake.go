package domain

import (
	"image"
	"strings"
	"unicode/utf8"
)

// Orientation records how a captured frame is rotated relative to upright.
type Orientation int

const (
	// OrientationUp means the frame is already upright.
	OrientationUp Orientation = iota

	// OrientationRotate90 means the frame must be rotated 90 degrees
	// clockwise to become upright.
	OrientationRotate90

	// OrientationRotate180 means the frame is upside down.
	OrientationRotate180

	// OrientationRotate270 means the frame must be rotated 270 degrees
	// clockwise to become upright.
	OrientationRotate270
)

// OrientationFromDegrees maps a clockwise rotation in degrees to an
// Orientation. Degrees must be a non-negative multiple of 90; other
// values map to OrientationUp.
func OrientationFromDegrees(degrees int) Orientation {
	switch degrees % 360 {
	case 90:
		return OrientationRotate90
	case 180:
		return OrientationRotate180
	case 270:
		return OrientationRotate270
	default:
		return OrientationUp
	}
}

// CapturedImage is a still frame captured from a camera source,
// together with its orientation tag.
type CapturedImage struct {
	// Pixels is the raw decoded frame as captured.
	Pixels image.Image

	// Orientation is the rotation needed to make Pixels upright.
	// Text recognition requires upright pixels.
	Orientation Orientation
}

// IntakeDraft is the result of capture and recognition, before the user
// has confirmed anything. Nothing is persisted while a draft exists.
type IntakeDraft struct {
	// CandidateName is the best-guess medication name from the label,
	// empty when no line of the extracted text qualified.
	CandidateName string

	// ExtractedText is the full recognized label text, lines joined
	// with newlines. Empty when recognition failed or found nothing.
	ExtractedText string

	// Capture is the frame the text was recognized from, nil when the
	// draft was created without a camera capture.
	Capture *CapturedImage
}

// Candidate name bounds, exclusive on both ends.
const (
	candidateMinLen = 3
	candidateMaxLen = 50
)

// CandidateName scans extracted label text line by line and returns the
// first line whose trimmed length is strictly between 3 and 50
// characters. Prescription labels lead with short codes and pharmacy
// boilerplate; the first mid-length line is usually the drug name.
// Returns "" when no line qualifies.
func CandidateName(extracted string) string {
	for _, line := range strings.Split(extracted, "\n") {
		trimmed := strings.TrimSpace(line)
		n := utf8.RuneCountInString(trimmed)
		if n > candidateMinLen && n < candidateMaxLen {
			return trimmed
		}
	}
	return ""
}
