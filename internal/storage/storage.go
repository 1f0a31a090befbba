package storage

import (
	"sort"
	"sync"

	"github.com/gruhalankar/roomdecor/internal/models"
)

// AnalysisStore keeps recently completed room analyses in memory so
// clients can re-fetch results without repeating the vision call.
type AnalysisStore struct {
	analyses map[string]*models.AnalysisRecord
	mu       sync.RWMutex
}

func New() *AnalysisStore {
	return &AnalysisStore{
		analyses: make(map[string]*models.AnalysisRecord),
	}
}

func (s *AnalysisStore) Get(id string) (*models.AnalysisRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, exists := s.analyses[id]
	return record, exists
}

func (s *AnalysisStore) Set(id string, record *models.AnalysisRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[id] = record
}

// GetAll returns all stored analyses, newest first.
func (s *AnalysisStore) GetAll() []*models.AnalysisRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.AnalysisRecord, 0, len(s.analyses))
	for _, record := range s.analyses {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *AnalysisStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.analyses, id)
}
