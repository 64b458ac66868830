// Package service implements the report operations shared by the connect
// and HTTP surfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shotdiff/internal/reportv1"
	"shotdiff/internal/store"
	"shotdiff/internal/watch"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var ErrInvalidArgument = errors.New("invalid argument")

var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Service owns report persistence and change notification.
type Service struct {
	store  store.Store
	broker *watch.Broker
	log    *zap.Logger
	now    func() time.Time
}

// New creates a report service. broker and log may be nil.
func New(st store.Store, broker *watch.Broker, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, broker: broker, log: log, now: time.Now}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func checkID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", invalid("id is required")
	}
	if !idPattern.MatchString(id) {
		return "", invalid("id %q must match %s", id, idPattern)
	}
	return id, nil
}

// PutReport stores report, filling meta.id and meta.created_at when unset.
// The caller's report is not modified.
func (s *Service) PutReport(ctx context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error) {
	if report == nil {
		return nil, invalid("report is required")
	}
	r := reportv1.Clone(report)
	if r.Meta == nil {
		r.Meta = &reportv1.ReportMeta{}
	}
	if strings.TrimSpace(r.Meta.Id) == "" {
		r.Meta.Id = uuid.NewString()
	}
	id, err := checkID(r.Meta.Id)
	if err != nil {
		return nil, err
	}
	r.Meta.Id = id
	if r.Meta.CreatedAt == 0 {
		r.Meta.CreatedAt = s.now().UnixMilli()
	}

	sum, err := s.store.Put(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("store report %s: %w", id, err)
	}
	s.log.Info("report stored",
		zap.String("id", id),
		zap.String("project", sum.GetProject()),
		zap.Uint32("screenshots", sum.GetScreenshotCount()),
		zap.Uint32("changed", sum.GetChangedCount()),
	)
	s.publish(watch.Event{Kind: watch.KindPut, ReportID: id, Project: sum.GetProject(), Summary: sum})
	return sum, nil
}

func (s *Service) GetReport(ctx context.Context, id string) (*reportv1.ReportData, error) {
	id, err := checkID(id)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// ListReports returns summaries newest first. A zero limit means
// DefaultListLimit; larger limits are capped at MaxListLimit.
func (s *Service) ListReports(ctx context.Context, project string, limit int) ([]*reportv1.ReportSummary, error) {
	switch {
	case limit < 0:
		return nil, invalid("limit must not be negative")
	case limit == 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return s.store.List(ctx, store.ListOptions{Project: strings.TrimSpace(project), Limit: limit})
}

// DeleteReport reports whether a report was removed. A report that can no
// longer be read is still deleted; its event then carries no project.
func (s *Service) DeleteReport(ctx context.Context, id string) (bool, error) {
	id, err := checkID(id)
	if err != nil {
		return false, err
	}
	existing, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		s.log.Warn("report unreadable before delete", zap.String("id", id), zap.Error(err))
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete report %s: %w", id, err)
	}
	if deleted {
		s.log.Info("report deleted", zap.String("id", id))
		s.publish(watch.Event{Kind: watch.KindDelete, ReportID: id, Project: existing.GetMeta().GetProject()})
	}
	return deleted, nil
}

// Subscribe streams put and delete events for project, or all projects.
func (s *Service) Subscribe(ctx context.Context, project string) (<-chan watch.Event, error) {
	if s.broker == nil {
		return nil, errors.New("watch is not enabled")
	}
	return s.broker.Subscribe(ctx, project)
}

func (s *Service) publish(ev watch.Event) {
	if s.broker != nil {
		s.broker.Publish(ev)
	}
}
