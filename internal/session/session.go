// Package session holds the dataset produced by the most recent batch so
// a presentation layer can query it between user actions.
package session

import (
	"sync"

	"mbaillet/cic-xlsx/internal/models"
)

// Store is a process-scoped holder for the current dataset. A new batch
// replaces the previous contents wholesale. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	dataset  models.Dataset
	outcomes []models.ProcessingOutcome
	files    []string
}

// Snapshot is a read-only copy of the store contents.
type Snapshot struct {
	Dataset        models.Dataset
	Outcomes       []models.ProcessingOutcome
	FilesProcessed []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the store contents with the results of a batch.
func (s *Store) Set(dataset models.Dataset, outcomes []models.ProcessingOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = dataset.Clone()
	s.outcomes = make([]models.ProcessingOutcome, len(outcomes))
	copy(s.outcomes, outcomes)
	s.files = make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		s.files = append(s.files, outcome.Document)
	}
}

// Snapshot returns a copy of the current contents. Mutating the copy
// does not affect the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Dataset: s.dataset.Clone()}
	if len(s.outcomes) > 0 {
		snap.Outcomes = make([]models.ProcessingOutcome, len(s.outcomes))
		copy(snap.Outcomes, s.outcomes)
	}
	if len(s.files) > 0 {
		snap.FilesProcessed = make([]string, len(s.files))
		copy(snap.FilesProcessed, s.files)
	}
	return snap
}

// Empty reports whether the store holds no transactions.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dataset) == 0
}

// Clear resets the store to its initial empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = nil
	s.outcomes = nil
	s.files = nil
}
