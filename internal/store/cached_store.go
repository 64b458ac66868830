package store

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"shotdiff/internal/reportv1"
)

type CacheConfig struct {
	ReportTTL        time.Duration
	ReportMaxEntries int

	ListTTL        time.Duration
	ListMaxEntries int
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		ReportTTL:        5 * time.Minute,
		ReportMaxEntries: 256,
		ListTTL:          30 * time.Second,
		ListMaxEntries:   128,
	}
}

type MetricsSnapshot struct {
	ReportHits     uint64
	ReportMisses   uint64
	ListHits       uint64
	ListMisses     uint64
	OriginReads    uint64
	OriginWrites   uint64
	OriginReadErr  uint64
	OriginWriteErr uint64
}

type Metrics struct {
	reportHits     atomic.Uint64
	reportMisses   atomic.Uint64
	listHits       atomic.Uint64
	listMisses     atomic.Uint64
	originReads    atomic.Uint64
	originWrites   atomic.Uint64
	originReadErr  atomic.Uint64
	originWriteErr atomic.Uint64
}

func (m *Metrics) snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		ReportHits:     m.reportHits.Load(),
		ReportMisses:   m.reportMisses.Load(),
		ListHits:       m.listHits.Load(),
		ListMisses:     m.listMisses.Load(),
		OriginReads:    m.originReads.Load(),
		OriginWrites:   m.originWrites.Load(),
		OriginReadErr:  m.originReadErr.Load(),
		OriginWriteErr: m.originWriteErr.Load(),
	}
}

// CachedStore fronts an origin Store with expiring LRU caches. Reads hand
// out clones so callers can never mutate cached values. Any write drops
// every cached listing.
type CachedStore struct {
	origin Store

	// gen counts completed writes. A read fills the cache only if no write
	// finished while it was at the origin.
	mu  sync.Mutex
	gen uint64

	reports *expirable.LRU[string, *reportv1.ReportData]
	lists   *expirable.LRU[string, []*reportv1.ReportSummary]
	metrics Metrics
}

func NewCachedStore(origin Store, cfg CacheConfig) *CachedStore {
	def := DefaultCacheConfig()
	if cfg.ReportTTL <= 0 {
		cfg.ReportTTL = def.ReportTTL
	}
	if cfg.ReportMaxEntries <= 0 {
		cfg.ReportMaxEntries = def.ReportMaxEntries
	}
	if cfg.ListTTL <= 0 {
		cfg.ListTTL = def.ListTTL
	}
	if cfg.ListMaxEntries <= 0 {
		cfg.ListMaxEntries = def.ListMaxEntries
	}
	return &CachedStore{
		origin:  origin,
		reports: expirable.NewLRU[string, *reportv1.ReportData](cfg.ReportMaxEntries, nil, cfg.ReportTTL),
		lists:   expirable.NewLRU[string, []*reportv1.ReportSummary](cfg.ListMaxEntries, nil, cfg.ListTTL),
	}
}

func (s *CachedStore) Metrics() MetricsSnapshot {
	if s == nil {
		return MetricsSnapshot{}
	}
	return s.metrics.snapshot()
}

func (s *CachedStore) Put(ctx context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error) {
	s.metrics.originWrites.Add(1)
	sum, err := s.origin.Put(ctx, report)
	if err != nil {
		s.metrics.originWriteErr.Add(1)
		return nil, err
	}
	s.mu.Lock()
	s.gen++
	s.reports.Add(sum.GetId(), reportv1.Clone(report))
	s.lists.Purge()
	s.mu.Unlock()
	return sum, nil
}

func (s *CachedStore) Get(ctx context.Context, id string) (*reportv1.ReportData, error) {
	id = normalizeID(id)
	if r, ok := s.reports.Get(id); ok {
		s.metrics.reportHits.Add(1)
		return reportv1.Clone(r), nil
	}
	s.metrics.reportMisses.Add(1)
	s.metrics.originReads.Add(1)

	gen := s.generation()
	r, err := s.origin.Get(ctx, id)
	if err != nil {
		s.metrics.originReadErr.Add(1)
		return nil, err
	}
	s.fill(gen, func() { s.reports.Add(id, reportv1.Clone(r)) })
	return r, nil
}

func (s *CachedStore) List(ctx context.Context, opts ListOptions) ([]*reportv1.ReportSummary, error) {
	key := listKey(opts)
	if list, ok := s.lists.Get(key); ok {
		s.metrics.listHits.Add(1)
		return cloneSummaries(list), nil
	}
	s.metrics.listMisses.Add(1)
	s.metrics.originReads.Add(1)

	gen := s.generation()
	list, err := s.origin.List(ctx, opts)
	if err != nil {
		s.metrics.originReadErr.Add(1)
		return nil, err
	}
	s.fill(gen, func() { s.lists.Add(key, cloneSummaries(list)) })
	return list, nil
}

func (s *CachedStore) Delete(ctx context.Context, id string) (bool, error) {
	id = normalizeID(id)
	s.metrics.originWrites.Add(1)
	deleted, err := s.origin.Delete(ctx, id)
	if err != nil {
		s.metrics.originWriteErr.Add(1)
		return false, err
	}
	s.mu.Lock()
	s.gen++
	s.reports.Remove(id)
	s.lists.Purge()
	s.mu.Unlock()
	return deleted, nil
}

func (s *CachedStore) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *CachedStore) fill(gen uint64, add func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		add()
	}
}

func listKey(opts ListOptions) string {
	return strings.TrimSpace(opts.Project) + "\x00" + strconv.Itoa(opts.Limit)
}

func cloneSummaries(in []*reportv1.ReportSummary) []*reportv1.ReportSummary {
	if in == nil {
		return nil
	}
	out := make([]*reportv1.ReportSummary, len(in))
	for i, s := range in {
		out[i] = reportv1.Clone(s)
	}
	return out
}
