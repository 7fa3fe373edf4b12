// Package imagefile provides a file-backed camera adapter. On machines
// without camera hardware, captures arrive as photo files (e.g.
// exported from a phone); this adapter stands in for the camera by
// decoding one of those files.
package imagefile

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // label photo decoding
	_ "image/png"  // label photo decoding
	"os"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
)

// Ensure Camera implements the interface.
var _ driven.Camera = (*Camera)(nil)

// Camera implements driven.Camera by reading a still image from disk.
type Camera struct {
	path        string
	orientation domain.Orientation
}

// NewCamera creates a camera that captures the image at path.
// orientation tags how the photo is rotated relative to upright.
func NewCamera(path string, orientation domain.Orientation) *Camera {
	return &Camera{path: path, orientation: orientation}
}

// Capture decodes the configured image file.
func (c *Camera) Capture(ctx context.Context) (*domain.CapturedImage, error) {
	select {
	case <-ctx.Done():
		return nil, domain.ErrCaptureCancelled
	default:
	}

	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrCameraUnavailable, c.path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrCameraUnavailable, c.path, err)
	}

	if ctx.Err() != nil {
		return nil, domain.ErrCaptureCancelled
	}

	return &domain.CapturedImage{Pixels: img, Orientation: c.orientation}, nil
}
