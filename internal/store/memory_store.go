package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shotdiff/internal/reportv1"
)

type memoryEntry struct {
	payload []byte
	summary *reportv1.ReportSummary
}

// MemoryStore keeps encoded reports in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	id, err := reportID(report)
	if err != nil {
		return nil, err
	}
	payload, err := report.Marshal()
	if err != nil {
		return nil, err
	}
	sum := Summarize(report)
	sum.Id = id
	sum.StoredAt = s.now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = memoryEntry{payload: payload, summary: sum}
	return reportv1.Clone(sum), nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*reportv1.ReportData, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	id = normalizeID(id)
	if id == "" {
		return nil, fmt.Errorf("report id is required")
	}
	s.mu.RLock()
	entry, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return reportv1.Unmarshal[reportv1.ReportData](entry.payload)
}

func (s *MemoryStore) List(_ context.Context, opts ListOptions) ([]*reportv1.ReportSummary, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	s.mu.RLock()
	out := make([]*reportv1.ReportSummary, 0, len(s.data))
	for _, entry := range s.data {
		if opts.matches(entry.summary) {
			out = append(out, reportv1.Clone(entry.summary))
		}
	}
	s.mu.RUnlock()
	sortNewestFirst(out)
	return opts.truncate(out), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("store is nil")
	}
	id = normalizeID(id)
	if id == "" {
		return false, fmt.Errorf("report id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}
