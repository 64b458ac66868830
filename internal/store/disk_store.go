package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"

	"shotdiff/internal/reportv1"
)

const diskExt = ".json"

// DiskStore persists reports as protobuf JSON files, one per report id.
type DiskStore struct {
	root string
	mu   sync.Mutex
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Put(_ context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error) {
	id, err := reportID(report)
	if err != nil {
		return nil, err
	}
	path, err := s.pathFor(id)
	if err != nil {
		return nil, err
	}
	m := protojson.MarshalOptions{UseProtoNames: true, Indent: "  "}
	raw, err := m.Marshal(reportv1.Dynamic(report))
	if err != nil {
		return nil, fmt.Errorf("encode report %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(s.root, ".report-*")
	if err != nil {
		return nil, err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	sum := Summarize(report)
	sum.Id = id
	sum.StoredAt = info.ModTime().UnixMilli()
	return sum, nil
}

func (s *DiskStore) Get(_ context.Context, id string) (*reportv1.ReportData, error) {
	id = normalizeID(id)
	path, err := s.pathFor(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	report, _, err := s.loadLocked(path)
	return report, err
}

func (s *DiskStore) List(_ context.Context, opts ListOptions) ([]*reportv1.ReportSummary, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]*reportv1.ReportSummary, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, diskExt) {
			continue
		}
		report, storedAt, err := s.loadLocked(filepath.Join(s.root, name))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		sum := Summarize(report)
		if sum.Id == "" {
			sum.Id = strings.TrimSuffix(name, diskExt)
		}
		sum.StoredAt = storedAt
		if opts.matches(sum) {
			out = append(out, sum)
		}
	}
	sortNewestFirst(out)
	return opts.truncate(out), nil
}

func (s *DiskStore) Delete(_ context.Context, id string) (bool, error) {
	id = normalizeID(id)
	path, err := s.pathFor(id)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *DiskStore) loadLocked(path string) (*reportv1.ReportData, int64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	report := &reportv1.ReportData{}
	if err := report.UnmarshalJSON(raw); err != nil {
		return nil, 0, err
	}
	return report, info.ModTime().UnixMilli(), nil
}

func (s *DiskStore) pathFor(id string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("store is nil")
	}
	if s.root == "" {
		return "", fmt.Errorf("root is required")
	}
	if id == "" {
		return "", fmt.Errorf("report id is required")
	}
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return "", fmt.Errorf("invalid report id %q", id)
	}
	return filepath.Join(s.root, id+diskExt), nil
}
