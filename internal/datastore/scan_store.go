package datastore

import (
	"sync"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/models"
)

// ScanResultStore keeps scan results in process-local memory, keyed by scan
// ID. Results do not survive a restart; callers needing durability export
// reports to disk instead.
type ScanResultStore struct {
	mu      sync.RWMutex
	results map[string]*models.ScanResult
	order   []string
}

// NewScanResultStore creates an empty store
func NewScanResultStore() *ScanResultStore {
	return &ScanResultStore{
		results: make(map[string]*models.ScanResult),
	}
}

// Save stores a result under its scan ID, replacing any previous entry.
func (s *ScanResultStore) Save(result *models.ScanResult) error {
	if result == nil || result.ID == "" {
		return errorwrapper.WrapError(errorwrapper.ErrInvalidInput, "scan result must have an ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[result.ID]; !exists {
		s.order = append(s.order, result.ID)
	}
	s.results[result.ID] = result
	return nil
}

// Get returns the result for a scan ID.
func (s *ScanResultStore) Get(id string) (*models.ScanResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[id]
	if !ok {
		return nil, errorwrapper.WrapError(errorwrapper.ErrNotFound, "no scan result for ID "+id)
	}
	return result, nil
}

// List returns all stored results in insertion order.
func (s *ScanResultStore) List() []*models.ScanResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*models.ScanResult, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, s.results[id])
	}
	return results
}

// Count returns the number of stored results.
func (s *ScanResultStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Clear removes all stored results.
func (s *ScanResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[string]*models.ScanResult)
	s.order = nil
}
