package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pillziy/pillziy-cli/internal/adapters/driven/storage/memory"
	"github.com/pillziy/pillziy-cli/internal/core/domain"
)

func TestNewMedicationService_StartsEmpty(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	require.NotNil(t, service)
	assert.Empty(t, service.List(ctx))
}

func TestNewMedicationService_UndecodableBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	blobs := memory.NewBlobStore()
	require.NoError(t, blobs.Save(ctx, StorageKey, []byte("{not json")))

	service := NewMedicationService(ctx, blobs)

	assert.Empty(t, service.List(ctx))
}

func TestMedicationService_Add_AssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	before := time.Now()
	med, err := service.Add(ctx, domain.Medication{
		Name:      "Amoxicillin",
		Dosage:    "250mg",
		Frequency: domain.FrequencyTwiceDaily,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, med.ID)
	assert.Equal(t, "Amoxicillin", med.Name)
	assert.False(t, med.CreatedAt.Before(before))
}

func TestMedicationService_Add_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	names := []string{"Amoxicillin", "Ibuprofen", "Metformin"}
	ids := make(map[string]bool)
	for _, name := range names {
		med, err := service.Add(ctx, domain.Medication{Name: name})
		require.NoError(t, err)
		assert.False(t, ids[med.ID], "IDs must be unique")
		ids[med.ID] = true
	}

	listed := service.List(ctx)
	require.Len(t, listed, 3)
	for i, name := range names {
		assert.Equal(t, name, listed[i].Name)
	}
}

func TestMedicationService_Remove(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	med, err := service.Add(ctx, domain.Medication{Name: "Ibuprofen"})
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, med.ID))

	for _, m := range service.List(ctx) {
		assert.NotEqual(t, med.ID, m.ID)
	}
}

func TestMedicationService_Remove_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	_, err := service.Add(ctx, domain.Medication{Name: "Ibuprofen"})
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, "no-such-id"))
	assert.Len(t, service.List(ctx), 1)
}

func TestMedicationService_Update_ChangesMatchingRecordOnly(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	first, err := service.Add(ctx, domain.Medication{Name: "Amoxicillin", Dosage: "250mg"})
	require.NoError(t, err)
	second, err := service.Add(ctx, domain.Medication{Name: "Ibuprofen", Dosage: "200mg"})
	require.NoError(t, err)

	first.Dosage = "500mg"
	require.NoError(t, service.Update(ctx, first))

	listed := service.List(ctx)
	require.Len(t, listed, 2)
	assert.Equal(t, "500mg", listed[0].Dosage)
	assert.Equal(t, second.Dosage, listed[1].Dosage)
}

func TestMedicationService_Update_PreservesIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	med, err := service.Add(ctx, domain.Medication{Name: "Amoxicillin"})
	require.NoError(t, err)

	tampered := med
	tampered.Name = "Renamed"
	tampered.CreatedAt = time.Now().Add(-24 * time.Hour)
	require.NoError(t, service.Update(ctx, tampered))

	listed := service.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, "Renamed", listed[0].Name)
	assert.Equal(t, med.ID, listed[0].ID)
	assert.True(t, listed[0].CreatedAt.Equal(med.CreatedAt))
}

func TestMedicationService_Update_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	med, err := service.Add(ctx, domain.Medication{Name: "Amoxicillin"})
	require.NoError(t, err)

	ghost := domain.Medication{ID: "no-such-id", Name: "Ghost"}
	require.NoError(t, service.Update(ctx, ghost))

	listed := service.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, med.Name, listed[0].Name)
}

func TestMedicationService_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := memory.NewBlobStore()

	service := NewMedicationService(ctx, blobs)
	first, err := service.Add(ctx, domain.Medication{Name: "Amoxicillin", Dosage: "250mg"})
	require.NoError(t, err)
	second, err := service.Add(ctx, domain.Medication{Name: "Ibuprofen"})
	require.NoError(t, err)
	require.NoError(t, service.Remove(ctx, second.ID))
	first.Dosage = "500mg"
	require.NoError(t, service.Update(ctx, first))
	want := service.List(ctx)

	// Fresh instance over the same backend simulates a process restart.
	restarted := NewMedicationService(ctx, blobs)
	got := restarted.List(ctx)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Dosage, got[i].Dosage)
		assert.Equal(t, want[i].Frequency, got[i].Frequency)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestMedicationService_FailedSaveKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	blobs := memory.NewBlobStore()
	blobs.FailSavesWith(assert.AnError)

	service := NewMedicationService(ctx, blobs)
	med, err := service.Add(ctx, domain.Medication{Name: "Amoxicillin"})
	require.NoError(t, err)

	listed := service.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, med.ID, listed[0].ID)
}

func TestMedicationService_List_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	_, err := service.Add(ctx, domain.Medication{Name: "Amoxicillin"})
	require.NoError(t, err)

	listed := service.List(ctx)
	listed[0].Name = "Mutated"

	assert.Equal(t, "Amoxicillin", service.List(ctx)[0].Name)
}

func TestMedicationService_Subscribe_NotifiesOnEveryMutation(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	events, cancel := service.Subscribe()
	defer cancel()

	med, err := service.Add(ctx, domain.Medication{Name: "Amoxicillin"})
	require.NoError(t, err)
	select {
	case <-events:
	default:
		t.Fatal("expected a change event after Add")
	}

	require.NoError(t, service.Remove(ctx, med.ID))
	select {
	case <-events:
	default:
		t.Fatal("expected a change event after Remove")
	}
}

func TestMedicationService_Subscribe_CancelStopsEvents(t *testing.T) {
	ctx := context.Background()
	service := NewMedicationService(ctx, memory.NewBlobStore())

	events, cancel := service.Subscribe()
	cancel()

	_, err := service.Add(ctx, domain.Medication{Name: "Amoxicillin"})
	require.NoError(t, err)

	// Channel is closed on cancel; no event should be pending.
	_, open := <-events
	assert.False(t, open)
}
