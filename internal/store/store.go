// Package store persists screenshot reports and lists their summaries.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"shotdiff/internal/reportv1"
)

// Store defines operations for persisting reports.
type Store interface {
	Put(ctx context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error)
	Get(ctx context.Context, id string) (*reportv1.ReportData, error)
	List(ctx context.Context, opts ListOptions) ([]*reportv1.ReportSummary, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ListOptions filters List. A zero Limit means no limit.
type ListOptions struct {
	Project string
	Limit   int
}

var ErrNotFound = errors.New("report not found")

// Summarize derives the listing view of a report. StoredAt is left to the
// store.
func Summarize(r *reportv1.ReportData) *reportv1.ReportSummary {
	meta := r.GetMeta()
	sum := &reportv1.ReportSummary{
		Id:        meta.GetId(),
		CreatedAt: meta.GetCreatedAt(),
		Project:   meta.GetProject(),
		Branch:    branchOf(meta),
	}
	items := r.GetScreenshots().GetItems()
	sum.ScreenshotCount = uint32(len(items))
	if sum.ScreenshotCount == 0 {
		sum.ScreenshotCount = r.GetScreenshots().GetTotal()
	}
	for _, s := range items {
		switch s.GetStatus() {
		case reportv1.ScreenshotStatus_SCREENSHOT_STATUS_CHANGED,
			reportv1.ScreenshotStatus_SCREENSHOT_STATUS_ADDED,
			reportv1.ScreenshotStatus_SCREENSHOT_STATUS_REMOVED:
			sum.ChangedCount++
		}
	}
	for _, a := range r.GetApprovals().GetItems() {
		if a.GetState() == reportv1.ApprovalState_APPROVAL_STATE_APPROVED {
			sum.ApprovedCount++
		}
	}
	return sum
}

func branchOf(meta *reportv1.ReportMeta) string {
	if b := meta.GetGitStatus().GetHead().GetBranch(); b != "" {
		return b
	}
	return meta.GetDiffBase().GetRevision().GetBranch()
}

func reportID(r *reportv1.ReportData) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report is nil")
	}
	id := normalizeID(r.GetMeta().GetId())
	if id == "" {
		return "", fmt.Errorf("report id is required")
	}
	return id, nil
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// sortNewestFirst orders by created_at descending, id ascending on ties.
func sortNewestFirst(out []*reportv1.ReportSummary) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].Id < out[j].Id
	})
}

func (o ListOptions) matches(s *reportv1.ReportSummary) bool {
	project := strings.TrimSpace(o.Project)
	return project == "" || s.GetProject() == project
}

func (o ListOptions) truncate(out []*reportv1.ReportSummary) []*reportv1.ReportSummary {
	if o.Limit > 0 && len(out) > o.Limit {
		return out[:o.Limit]
	}
	return out
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*DiskStore)(nil)
	_ Store = (*S3Store)(nil)
	_ Store = (*PostgresStore)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*CachedStore)(nil)
)
