package insights

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/domain"
)

// StateManager handles thread-safe access to the uploaded dataset and the
// latest analysis snapshot. Latest upload wins; there is no persistence.
type StateManager struct {
	log       zerolog.Logger
	histories map[string]domain.ProductHistory
	snapshot  Snapshot
	hasSnap   bool
	mu        sync.RWMutex
}

// NewStateManager creates an empty state manager.
func NewStateManager(log zerolog.Logger) *StateManager {
	return &StateManager{
		log:       log.With().Str("component", "insights_state_manager").Logger(),
		histories: map[string]domain.ProductHistory{},
	}
}

// SetHistories replaces the held dataset.
func (sm *StateManager) SetHistories(histories map[string]domain.ProductHistory) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.histories = histories
	sm.log.Info().Int("products", len(histories)).Msg("Dataset updated")
}

// Histories returns a shallow copy of the held dataset. The per-product
// slices are shared; callers must not mutate them.
func (sm *StateManager) Histories() map[string]domain.ProductHistory {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	out := make(map[string]domain.ProductHistory, len(sm.histories))
	for id, h := range sm.histories {
		out[id] = h
	}
	return out
}

// HasData reports whether a dataset has been uploaded.
func (sm *StateManager) HasData() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.histories) > 0
}

// SetSnapshot caches the latest analysis snapshot.
func (sm *StateManager) SetSnapshot(s Snapshot) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.snapshot = s
	sm.hasSnap = true
	sm.log.Debug().Str("snapshot_id", s.ID).Msg("Snapshot cached")
}

// Snapshot returns the cached snapshot and whether one exists.
func (sm *StateManager) Snapshot() (Snapshot, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.snapshot, sm.hasSnap
}
