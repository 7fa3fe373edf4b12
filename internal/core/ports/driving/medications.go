package driving

import (
	"context"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
)

// MedicationRepository is the single source of truth for medication
// records. It exclusively owns the backing collection; List hands out
// copies, never a mutable view of internal state.
type MedicationRepository interface {
	// List returns the collection in insertion order.
	// An empty collection is a valid, expected state.
	List(ctx context.Context) []domain.Medication

	// Add assigns a fresh ID and creation timestamp to the draft,
	// appends it, persists the collection, and returns the finalized
	// record. A failed durable write keeps the in-memory mutation.
	Add(ctx context.Context, draft domain.Medication) (domain.Medication, error)

	// Remove deletes the record with the given ID.
	// Unknown IDs are a silent no-op.
	Remove(ctx context.Context, id string) error

	// Update replaces the record matching med.ID, preserving the stored
	// ID and CreatedAt regardless of what the caller supplies.
	// Unknown IDs are a silent no-op.
	Update(ctx context.Context, med domain.Medication) error

	// Subscribe registers an observer of collection changes. Each
	// successful mutation delivers one event with no payload; observers
	// re-read via List. The returned func cancels the subscription.
	Subscribe() (<-chan struct{}, func())
}
