package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"shotdiff/internal/reportv1"
)

const defaultRedisPrefix = "shotdiff"

// OpenRedis builds a client from a redis:// URL.
func OpenRedis(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opt), nil
}

type RedisOptions struct {
	// Prefix namespaces every key. Defaults to "shotdiff".
	Prefix string
	// TTL expires report and summary keys. Zero keeps them forever.
	TTL time.Duration
}

// RedisStore keeps reports and summaries under per-id keys and indexes ids
// in sorted sets scored by created_at:
//
//	{prefix}:report:{id}      binary ReportData
//	{prefix}:summary:{id}     binary ReportSummary
//	{prefix}:index            all ids
//	{prefix}:project:{name}   ids of one project
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, opts RedisOptions) *RedisStore {
	prefix := strings.TrimSpace(opts.Prefix)
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: opts.TTL}
}

func (s *RedisStore) reportKey(id string) string    { return s.prefix + ":report:" + id }
func (s *RedisStore) summaryKey(id string) string   { return s.prefix + ":summary:" + id }
func (s *RedisStore) indexKey() string              { return s.prefix + ":index" }
func (s *RedisStore) projectKey(name string) string { return s.prefix + ":project:" + name }

func (s *RedisStore) Put(ctx context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error) {
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
	sum.StoredAt = time.Now().UnixMilli()
	rawSummary, err := sum.Marshal()
	if err != nil {
		return nil, err
	}

	prev, err := s.summary(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	score := float64(sum.CreatedAt)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.reportKey(id), payload, s.ttl)
		pipe.Set(ctx, s.summaryKey(id), rawSummary, s.ttl)
		pipe.ZAdd(ctx, s.indexKey(), redis.Z{Score: score, Member: id})
		if prev != nil && prev.Project != sum.Project {
			pipe.ZRem(ctx, s.projectKey(prev.Project), id)
		}
		pipe.ZAdd(ctx, s.projectKey(sum.Project), redis.Z{Score: score, Member: id})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}
	return sum, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*reportv1.ReportData, error) {
	id = normalizeID(id)
	if id == "" {
		return nil, fmt.Errorf("report id is required")
	}
	data, err := s.client.Get(ctx, s.reportKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return reportv1.Unmarshal[reportv1.ReportData](data)
}

func (s *RedisStore) summary(ctx context.Context, id string) (*reportv1.ReportSummary, error) {
	data, err := s.client.Get(ctx, s.summaryKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return reportv1.Unmarshal[reportv1.ReportSummary](data)
}

// List drops index entries whose keys have expired or whose summary has
// moved to another project.
func (s *RedisStore) List(ctx context.Context, opts ListOptions) ([]*reportv1.ReportSummary, error) {
	index := s.indexKey()
	if project := strings.TrimSpace(opts.Project); project != "" {
		index = s.projectKey(project)
	}
	ids, err := s.client.ZRevRange(ctx, index, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.summaryKey(id)
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load summaries: %w", err)
	}

	out := make([]*reportv1.ReportSummary, 0, len(ids))
	var stale []any
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		sum, err := reportv1.Unmarshal[reportv1.ReportSummary]([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode summary %s: %w", ids[i], err)
		}
		if !opts.matches(sum) {
			// The id was re-stored under another project after its old keys expired.
			stale = append(stale, ids[i])
			continue
		}
		out = append(out, sum)
	}
	if len(stale) > 0 {
		if err := s.client.ZRem(ctx, index, stale...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune index: %w", err)
		}
	}
	sortNewestFirst(out)
	return opts.truncate(out), nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) (bool, error) {
	id = normalizeID(id)
	if id == "" {
		return false, fmt.Errorf("report id is required")
	}
	prev, err := s.summary(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return false, err
	}
	var deleted *redis.IntCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, s.reportKey(id))
		pipe.Del(ctx, s.summaryKey(id))
		pipe.ZRem(ctx, s.indexKey(), id)
		if prev != nil {
			pipe.ZRem(ctx, s.projectKey(prev.Project), id)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete report: %w", err)
	}
	return deleted.Val() > 0, nil
}
