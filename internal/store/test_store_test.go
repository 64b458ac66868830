package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shotdiff/internal/reportv1"
)

func newReport(id, project string, createdAt int64) *reportv1.ReportData {
	return &reportv1.ReportData{
		Meta: &reportv1.ReportMeta{
			Id:        id,
			CreatedAt: createdAt,
			Project:   project,
			GitStatus: &reportv1.GitStatus{Head: &reportv1.GitRevision{Branch: "feature/header"}},
			Labels:    map[string]string{"ci": "true"},
		},
		Screenshots: &reportv1.Screenshots{
			Items: []*reportv1.Screenshot{
				{Id: "a", Status: reportv1.ScreenshotStatus_SCREENSHOT_STATUS_CHANGED},
				{Id: "b", Status: reportv1.ScreenshotStatus_SCREENSHOT_STATUS_UNCHANGED},
				{Id: "c", Status: reportv1.ScreenshotStatus_SCREENSHOT_STATUS_ADDED},
			},
			Total: 3,
		},
		Approvals: &reportv1.Approvals{
			Items: []*reportv1.Approval{
				{ScreenshotId: "a", State: reportv1.ApprovalState_APPROVAL_STATE_APPROVED},
				{ScreenshotId: "c", State: reportv1.ApprovalState_APPROVAL_STATE_REJECTED},
			},
		},
	}
}

func ids(sums []*reportv1.ReportSummary) []string {
	out := make([]string, len(sums))
	for i, s := range sums {
		out[i] = s.GetId()
	}
	return out
}

// runStoreContract exercises a Store through projects unique to this run so
// it can also target shared databases.
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	ns := uuid.NewString()[:8]
	web, api := ns+"-web", ns+"-api"
	r1, r2, r3 := ns+"-r1", ns+"-r2", ns+"-r3"

	sum, err := s.Put(ctx, newReport(r1, web, 100))
	require.NoError(t, err)
	assert.Equal(t, r1, sum.GetId())
	assert.Equal(t, web, sum.GetProject())
	assert.Equal(t, "feature/header", sum.GetBranch())
	assert.EqualValues(t, 3, sum.GetScreenshotCount())
	assert.EqualValues(t, 2, sum.GetChangedCount())
	assert.EqualValues(t, 1, sum.GetApprovedCount())
	assert.NotZero(t, sum.GetStoredAt())

	_, err = s.Put(ctx, newReport(r2, web, 300))
	require.NoError(t, err)
	_, err = s.Put(ctx, newReport(r3, api, 200))
	require.NoError(t, err)

	got, err := s.Get(ctx, r1)
	require.NoError(t, err)
	if diff := cmp.Diff(newReport(r1, web, 100), got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}

	list, err := s.List(ctx, ListOptions{Project: web})
	require.NoError(t, err)
	assert.Equal(t, []string{r2, r1}, ids(list))

	list, err = s.List(ctx, ListOptions{Project: web, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{r2}, ids(list))

	// Re-putting under another project moves the report.
	_, err = s.Put(ctx, newReport(r1, api, 100))
	require.NoError(t, err)
	list, err = s.List(ctx, ListOptions{Project: web})
	require.NoError(t, err)
	assert.Equal(t, []string{r2}, ids(list))
	list, err = s.List(ctx, ListOptions{Project: api})
	require.NoError(t, err)
	assert.Equal(t, []string{r3, r1}, ids(list))

	deleted, err := s.Delete(ctx, r1)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = s.Delete(ctx, r1)
	require.NoError(t, err)
	assert.False(t, deleted)
	_, err = s.Get(ctx, r1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Put(ctx, newReport("", web, 1))
	assert.Error(t, err)
	_, err = s.Put(ctx, nil)
	assert.Error(t, err)

	for _, id := range []string{r2, r3} {
		_, err := s.Delete(ctx, id)
		require.NoError(t, err)
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStoreListsAllProjectsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, r := range []*reportv1.ReportData{
		newReport("b", "web", 100),
		newReport("c", "api", 300),
		newReport("a", "web", 100),
	} {
		_, err := s.Put(ctx, r)
		require.NoError(t, err)
	}
	list, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, ids(list))
}

func TestDiskStore(t *testing.T) {
	runStoreContract(t, NewDiskStore(t.TempDir()))
}

func TestDiskStoreWritesProtoNames(t *testing.T) {
	root := t.TempDir()
	s := NewDiskStore(root)
	_, err := s.Put(context.Background(), newReport("r1", "web", 42))
	require.NoError(t, err)

	raw, err := os.ReadFile(root + "/r1.json")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"created_at"`)
	assert.Contains(t, string(raw), `"SCREENSHOT_STATUS_CHANGED"`)
}

func TestDiskStoreRejectsPathTraversal(t *testing.T) {
	s := NewDiskStore(t.TempDir())
	ctx := context.Background()
	for _, id := range []string{"../evil", "a/b", `a\b`, ".hidden", ".."} {
		_, err := s.Put(ctx, newReport(id, "web", 1))
		assert.Error(t, err, "id %q", id)
		_, err = s.Get(ctx, id)
		assert.Error(t, err, "id %q", id)
	}
}

func TestDiskStoreListOnMissingRoot(t *testing.T) {
	s := NewDiskStore(t.TempDir() + "/missing")
	list, err := s.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore(t *testing.T) {
	_, client := newMiniRedis(t)
	runStoreContract(t, NewRedisStore(client, RedisOptions{}))
}

func TestRedisStoreExpiresReports(t *testing.T) {
	mr, client := newMiniRedis(t)
	s := NewRedisStore(client, RedisOptions{Prefix: "t", TTL: time.Minute})
	ctx := context.Background()

	_, err := s.Put(ctx, newReport("r1", "web", 1))
	require.NoError(t, err)
	assert.True(t, mr.Exists("t:report:r1"))

	mr.FastForward(2 * time.Minute)

	_, err = s.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)
	list, err := s.List(ctx, ListOptions{Project: "web"})
	require.NoError(t, err)
	assert.Empty(t, list)

	members, err := client.ZRange(ctx, "t:project:web", 0, -1).Result()
	require.NoError(t, err)
	assert.Empty(t, members, "stale index entries should be pruned")
}

func TestRedisStoreReputAfterExpiryMovesProject(t *testing.T) {
	mr, client := newMiniRedis(t)
	s := NewRedisStore(client, RedisOptions{Prefix: "t", TTL: time.Minute})
	ctx := context.Background()

	_, err := s.Put(ctx, newReport("x", "alpha", 1))
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = s.Put(ctx, newReport("x", "beta", 2))
	require.NoError(t, err)

	list, err := s.List(ctx, ListOptions{Project: "alpha"})
	require.NoError(t, err)
	assert.Empty(t, list)
	members, err := client.ZRange(ctx, "t:project:alpha", 0, -1).Result()
	require.NoError(t, err)
	assert.Empty(t, members)

	list, err = s.List(ctx, ListOptions{Project: "beta"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "beta", list[0].GetProject())
}

func TestCachedStore(t *testing.T) {
	runStoreContract(t, NewCachedStore(NewMemoryStore(), DefaultCacheConfig()))
}

// gatedStore pauses Get after the origin read until release is closed.
type gatedStore struct {
	Store
	read    chan struct{}
	release chan struct{}
}

func (g *gatedStore) Get(ctx context.Context, id string) (*reportv1.ReportData, error) {
	r, err := g.Store.Get(ctx, id)
	g.read <- struct{}{}
	<-g.release
	return r, err
}

func TestCachedStoreDoesNotCacheReadThatRacedPut(t *testing.T) {
	ctx := context.Background()
	origin := &gatedStore{Store: NewMemoryStore(), read: make(chan struct{}, 2), release: make(chan struct{})}
	_, err := origin.Put(ctx, newReport("r", "web", 1))
	require.NoError(t, err)
	s := NewCachedStore(origin, DefaultCacheConfig())

	done := make(chan *reportv1.ReportData)
	go func() {
		r, err := s.Get(ctx, "r")
		assert.NoError(t, err)
		done <- r
	}()
	<-origin.read

	_, err = s.Put(ctx, newReport("r", "web", 2))
	require.NoError(t, err)
	close(origin.release)
	assert.EqualValues(t, 1, (<-done).GetMeta().GetCreatedAt())

	got, err := s.Get(ctx, "r")
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.GetMeta().GetCreatedAt())
	assert.EqualValues(t, 1, s.Metrics().ReportHits)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
	}
	db, err := OpenPostgres(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Ping())

	runStoreContract(t, NewPostgresStore(db))
}

func TestS3Store(t *testing.T) {
	endpoint := os.Getenv("TEST_S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("TEST_S3_ENDPOINT not set, skipping S3 integration test")
	}
	bucket := os.Getenv("TEST_S3_BUCKET")
	if bucket == "" {
		bucket = "shotdiff-test"
	}
	s, err := NewS3Store(S3Config{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("TEST_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("TEST_S3_SECRET_KEY"),
		Bucket:    bucket,
		Prefix:    "test-" + uuid.NewString()[:8],
	})
	require.NoError(t, err)
	runStoreContract(t, s)
}

// flakyDB fails the first n statements and accepts the rest.
type flakyDB struct {
	fails atomic.Int32
	execs atomic.Int32
}

func (d *flakyDB) Connect(context.Context) (driver.Conn, error) { return flakyConn{d}, nil }
func (d *flakyDB) Driver() driver.Driver                         { return d }
func (d *flakyDB) Open(string) (driver.Conn, error)              { return flakyConn{d}, nil }

type flakyConn struct{ d *flakyDB }

func (flakyConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("prepare not supported") }
func (flakyConn) Close() error                        { return nil }
func (flakyConn) Begin() (driver.Tx, error)           { return nil, errors.New("tx not supported") }

func (c flakyConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	c.d.execs.Add(1)
	if c.d.fails.Add(-1) >= 0 {
		return nil, errors.New("connection refused")
	}
	return driver.RowsAffected(0), nil
}

func TestPostgresStoreRetriesSchemaAfterFailure(t *testing.T) {
	d := &flakyDB{}
	d.fails.Store(1)
	db := sql.OpenDB(d)
	t.Cleanup(func() { _ = db.Close() })
	s := NewPostgresStore(db)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.ensureSchema(cancelled))

	ctx := context.Background()
	require.Error(t, s.ensureSchema(ctx))
	require.NoError(t, s.ensureSchema(ctx))
	require.NoError(t, s.ensureSchema(ctx))
	assert.EqualValues(t, 2, d.execs.Load())
}

func TestS3StoreRetriesBucketCheck(t *testing.T) {
	var heads atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead || strings.Trim(r.URL.Path, "/") != "reports-bucket" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if heads.Add(1) == 1 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	s, err := NewS3Store(S3Config{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "reports-bucket",
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.Error(t, s.ensureBucket(ctx))
	require.NoError(t, s.ensureBucket(ctx))
	require.NoError(t, s.ensureBucket(ctx))
	assert.EqualValues(t, 2, heads.Load())
}

func TestNewS3StoreValidatesConfig(t *testing.T) {
	_, err := NewS3Store(S3Config{})
	assert.Error(t, err)
	_, err = NewS3Store(S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	assert.Error(t, err)
}

func TestSummarizeFallsBackToRevisionBranchAndTotal(t *testing.T) {
	r := &reportv1.ReportData{
		Meta: &reportv1.ReportMeta{
			Id: "r",
			DiffBase: &reportv1.DiffBase{ValueOneof: &reportv1.DiffBase_Revision{
				Revision: &reportv1.GitRevision{Branch: "main"},
			}},
		},
		Screenshots: &reportv1.Screenshots{Total: 7},
	}
	sum := Summarize(r)
	assert.Equal(t, "main", sum.GetBranch())
	assert.EqualValues(t, 7, sum.GetScreenshotCount())
	assert.Zero(t, sum.GetChangedCount())

	empty := Summarize(nil)
	assert.Equal(t, "", empty.GetId())
}
