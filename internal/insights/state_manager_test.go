package insights

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/retailmind/internal/domain"
)

func TestStateManager_EmptyByDefault(t *testing.T) {
	sm := NewStateManager(zerolog.Nop())

	assert.False(t, sm.HasData())
	_, ok := sm.Snapshot()
	assert.False(t, ok)
}

func TestStateManager_SetAndGetHistories(t *testing.T) {
	sm := NewStateManager(zerolog.Nop())
	histories := map[string]domain.ProductHistory{
		"Milk": {{Date: time.Now(), ProductID: "Milk", UnitsSold: 5}},
	}

	sm.SetHistories(histories)

	assert.True(t, sm.HasData())
	got := sm.Histories()
	require.Contains(t, got, "Milk")
	assert.Len(t, got["Milk"], 1)

	// The returned map is a copy; mutating it must not affect held state.
	delete(got, "Milk")
	assert.True(t, sm.HasData())
}

func TestStateManager_LatestSnapshotWins(t *testing.T) {
	sm := NewStateManager(zerolog.Nop())

	sm.SetSnapshot(Snapshot{ID: "first"})
	sm.SetSnapshot(Snapshot{ID: "second"})

	got, ok := sm.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "second", got.ID)
}
