package models

import "sync"

// InsightStore is the canonical in-memory record set. It guarantees
// nothing about ordering; presentation sorts by date when it needs to.
type InsightStore struct {
	mu      sync.RWMutex
	records []InsightRecord
}

func NewInsightStore() *InsightStore {
	return &InsightStore{
		records: make([]InsightRecord, 0),
	}
}

func (s *InsightStore) Add(rec InsightRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Remove deletes the record with the given id. Removing an unknown id
// is a no-op and reports false.
func (s *InsightStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

func (s *InsightStore) Get(id string) (*InsightRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			copy := rec
			return &copy, true
		}
	}
	return nil, false
}

// List returns a copy of the current record set.
func (s *InsightStore) List() []InsightRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]InsightRecord, len(s.records))
	copy(result, s.records)
	return result
}

// Put replaces the entire record set. Used by restore.
func (s *InsightStore) Put(records []InsightRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]InsightRecord, len(records))
	copy(s.records, records)
}

func (s *InsightStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
