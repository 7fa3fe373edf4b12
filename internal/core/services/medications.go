package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driving"
	"github.com/pillziy/pillziy-cli/internal/logger"
)

// Ensure MedicationService implements the interface.
var _ driving.MedicationRepository = (*MedicationService)(nil)

// StorageKey is the single blob-store slot holding the serialized
// medication collection.
const StorageKey = "medications"

// MedicationService owns the medication collection. All mutations go
// through it; the backing slice is never handed out.
type MedicationService struct {
	blobs driven.BlobStore

	mu          sync.Mutex
	medications []domain.Medication
	subscribers map[int]chan struct{}
	nextSubID   int
}

// NewMedicationService creates the repository and loads any previously
// persisted collection. Missing or undecodable stored data yields an
// empty collection; construction never fails on bad data.
func NewMedicationService(ctx context.Context, blobs driven.BlobStore) *MedicationService {
	s := &MedicationService{
		blobs:       blobs,
		subscribers: make(map[int]chan struct{}),
	}
	s.load(ctx)
	return s
}

func (s *MedicationService) load(ctx context.Context) {
	data, err := s.blobs.Load(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("loading medications, starting empty: %v", err)
		}
		return
	}

	var meds []domain.Medication
	if err := json.Unmarshal(data, &meds); err != nil {
		logger.Warn("stored medications unreadable, starting empty: %v", err)
		return
	}
	s.medications = meds
	logger.Info("loaded %d medications", len(meds))
}

// Reload re-reads the persisted collection, picking up changes made by
// another process, and notifies observers.
func (s *MedicationService) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.medications = nil
	s.load(ctx)
	s.notifyLocked()
}

// List returns a copy of the collection in insertion order.
func (s *MedicationService) List(_ context.Context) []domain.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Medication, len(s.medications))
	copy(out, s.medications)
	return out
}

// Add finalizes the draft with a fresh ID and timestamp, appends it,
// persists, and notifies observers. The finalized record is returned.
func (s *MedicationService) Add(ctx context.Context, draft domain.Medication) (domain.Medication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.NewString()
	draft.CreatedAt = time.Now()

	s.medications = append(s.medications, draft)
	s.persistLocked(ctx)
	s.notifyLocked()
	return draft, nil
}

// Remove deletes the record with the given ID. Unknown IDs are a no-op
// with no persistence or notification.
func (s *MedicationService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.medications {
		if s.medications[i].ID == id {
			s.medications = append(s.medications[:i], s.medications[i+1:]...)
			s.persistLocked(ctx)
			s.notifyLocked()
			return nil
		}
	}
	return nil
}

// Update replaces the record matching med.ID. The stored ID and
// CreatedAt are preserved regardless of the caller's values.
// Unknown IDs are a no-op.
func (s *MedicationService) Update(ctx context.Context, med domain.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.medications {
		if s.medications[i].ID == med.ID {
			med.CreatedAt = s.medications[i].CreatedAt
			s.medications[i] = med
			s.persistLocked(ctx)
			s.notifyLocked()
			return nil
		}
	}
	return nil
}

// Subscribe registers a change observer. Events are delivered
// non-blocking; a slow observer misses intermediate events but always
// sees one after the latest mutation.
func (s *MedicationService) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan struct{}, 1)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

// persistLocked rewrites the full collection blob. A failed write is
// logged and swallowed; the in-memory state remains authoritative for
// the session.
func (s *MedicationService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.medications)
	if err != nil {
		logger.Warn("encoding medications: %v", err)
		return
	}
	if err := s.blobs.Save(ctx, StorageKey, data); err != nil {
		logger.Warn("persisting medications: %v", err)
	}
}

func (s *MedicationService) notifyLocked() {
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
