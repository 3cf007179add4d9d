package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbaillet/cic-xlsx/internal/models"
)

func sampleBatch() (models.Dataset, []models.ProcessingOutcome) {
	dataset := models.Dataset{
		models.NewDebit(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "LOYER", decimal.RequireFromString("650.00")),
	}
	outcomes := []models.ProcessingOutcome{
		models.ParsedOutcome("janvier.pdf", 1, 0),
	}
	return dataset, outcomes
}

func TestStoreStartsEmpty(t *testing.T) {
	store := NewStore()

	assert.True(t, store.Empty())
	snap := store.Snapshot()
	assert.Empty(t, snap.Dataset)
	assert.Empty(t, snap.Outcomes)
	assert.Empty(t, snap.FilesProcessed)
}

func TestSetReplacesContentsWholesale(t *testing.T) {
	store := NewStore()
	dataset, outcomes := sampleBatch()
	store.Set(dataset, outcomes)

	second := models.Dataset{
		models.NewCredit(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "SALAIRE", decimal.RequireFromString("2100.00")),
	}
	store.Set(second, []models.ProcessingOutcome{models.ParsedOutcome("fevrier.pdf", 1, 0)})

	snap := store.Snapshot()
	require.Len(t, snap.Dataset, 1)
	assert.Equal(t, "SALAIRE", snap.Dataset[0].Label)
	assert.Equal(t, []string{"fevrier.pdf"}, snap.FilesProcessed)
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.Set(sampleBatch())

	snap := store.Snapshot()
	snap.Dataset[0].Label = "MODIFIE"
	snap.FilesProcessed[0] = "autre.pdf"

	fresh := store.Snapshot()
	assert.Equal(t, "LOYER", fresh.Dataset[0].Label)
	assert.Equal(t, []string{"janvier.pdf"}, fresh.FilesProcessed)
}

func TestClear(t *testing.T) {
	store := NewStore()
	store.Set(sampleBatch())
	require.False(t, store.Empty())

	store.Clear()

	assert.True(t, store.Empty())
	snap := store.Snapshot()
	assert.Empty(t, snap.Dataset)
	assert.Empty(t, snap.Outcomes)
	assert.Empty(t, snap.FilesProcessed)
}
