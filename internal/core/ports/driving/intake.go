package driving

import (
	"context"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
)

// IntakeResult is delivered once per Start call: either a draft ready
// for confirmation or the error that aborted capture/recognition.
type IntakeResult struct {
	Draft domain.IntakeDraft
	Err   error
}

// IntakeForm carries the user-edited fields from the confirmation step.
// Empty fields fall back to configured defaults at commit time.
type IntakeForm struct {
	Name      string
	Dosage    string
	Frequency domain.Frequency
}

// IntakeService runs the one-shot scan flow:
// capture -> recognize -> derive candidate name -> confirm -> commit.
// Nothing is persisted until Confirm succeeds.
type IntakeService interface {
	// Start begins capture and recognition off the calling goroutine.
	// Exactly one IntakeResult is delivered on the returned channel.
	// Returns domain.ErrIntakeInProgress while a scan is running or a
	// draft is awaiting confirmation.
	Start(ctx context.Context) (<-chan IntakeResult, error)

	// Confirm commits the pending draft with the user-edited fields,
	// delegating persistence to the repository.
	// Returns domain.ErrIntakeNotActive when no draft is pending.
	Confirm(ctx context.Context, form IntakeForm) (domain.Medication, error)

	// Cancel aborts any in-flight capture/recognition and drops a
	// pending draft. Safe to call at any time; nothing is persisted.
	Cancel()

	// Active reports whether a scan is running or a draft is pending.
	Active() bool
}
