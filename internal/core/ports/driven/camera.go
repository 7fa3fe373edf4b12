package driven

import (
	"context"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
)

// Camera produces still images of prescription labels on demand.
type Camera interface {
	// Capture acquires one still image.
	// Returns domain.ErrCaptureCancelled when the user dismissed the
	// capture, and domain.ErrCameraUnavailable (possibly wrapped) when
	// no camera source could be opened.
	Capture(ctx context.Context) (*domain.CapturedImage, error)
}
