package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"shotdiff/internal/reportv1"
)

// OpenPostgres opens a database/sql handle through the pgx driver.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return db, nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS shotdiff_reports (
    id TEXT PRIMARY KEY,
    project TEXT NOT NULL DEFAULT '',
    branch TEXT NOT NULL DEFAULT '',
    created_at BIGINT NOT NULL DEFAULT 0,
    screenshot_count INTEGER NOT NULL DEFAULT 0,
    changed_count INTEGER NOT NULL DEFAULT 0,
    approved_count INTEGER NOT NULL DEFAULT 0,
    payload BYTEA NOT NULL DEFAULT ''::bytea,
    stored_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_shotdiff_reports_project_created ON shotdiff_reports(project, created_at DESC);
`

// PostgresStore keeps the encoded report next to its summary columns so
// List never decodes payloads.
type PostgresStore struct {
	db *sql.DB

	schemaMu    sync.Mutex
	schemaReady bool
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ensureSchema retries on every call until the DDL succeeds once.
func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("db is nil")
	}
	s.schemaMu.Lock()
	defer s.schemaMu.Unlock()
	if s.schemaReady {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	s.schemaReady = true
	return nil
}

func (s *PostgresStore) Put(ctx context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error) {
	id, err := reportID(report)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	payload, err := report.Marshal()
	if err != nil {
		return nil, err
	}
	sum := Summarize(report)
	sum.Id = id
	storedAt := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
INSERT INTO shotdiff_reports (id, project, branch, created_at, screenshot_count, changed_count, approved_count, payload, stored_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id)
DO UPDATE SET project=EXCLUDED.project, branch=EXCLUDED.branch, created_at=EXCLUDED.created_at,
    screenshot_count=EXCLUDED.screenshot_count, changed_count=EXCLUDED.changed_count,
    approved_count=EXCLUDED.approved_count, payload=EXCLUDED.payload, stored_at=EXCLUDED.stored_at
`, id, sum.Project, sum.Branch, sum.CreatedAt, int64(sum.ScreenshotCount), int64(sum.ChangedCount), int64(sum.ApprovedCount), payload, storedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert report %s: %w", id, err)
	}
	sum.StoredAt = storedAt.UnixMilli()
	return sum, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*reportv1.ReportData, error) {
	id = normalizeID(id)
	if id == "" {
		return nil, fmt.Errorf("report id is required")
	}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM shotdiff_reports WHERE id=$1`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return reportv1.Unmarshal[reportv1.ReportData](payload)
}

func (s *PostgresStore) List(ctx context.Context, opts ListOptions) ([]*reportv1.ReportSummary, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	query := `
SELECT id, project, branch, created_at, screenshot_count, changed_count, approved_count, stored_at
FROM shotdiff_reports
WHERE ($1 = '' OR project = $1)
ORDER BY created_at DESC, id ASC`
	args := []any{strings.TrimSpace(opts.Project)}
	if opts.Limit > 0 {
		query += ` LIMIT $2`
		args = append(args, opts.Limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*reportv1.ReportSummary
	for rows.Next() {
		var (
			sum                        reportv1.ReportSummary
			screens, changed, approved int64
			storedAt                   time.Time
		)
		if err := rows.Scan(&sum.Id, &sum.Project, &sum.Branch, &sum.CreatedAt, &screens, &changed, &approved, &storedAt); err != nil {
			return nil, err
		}
		sum.ScreenshotCount = uint32(screens)
		sum.ChangedCount = uint32(changed)
		sum.ApprovedCount = uint32(approved)
		sum.StoredAt = storedAt.UnixMilli()
		out = append(out, &sum)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) (bool, error) {
	id = normalizeID(id)
	if id == "" {
		return false, fmt.Errorf("report id is required")
	}
	if err := s.ensureSchema(ctx); err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM shotdiff_reports WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
