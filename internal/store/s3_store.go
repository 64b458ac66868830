package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"shotdiff/internal/reportv1"
)

const s3ContentType = "application/x-protobuf"

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// S3Store keeps one binary-encoded object per report under Prefix.
type S3Store struct {
	client     *minio.Client
	bucketName string
	region     string
	prefix     string

	initMu    sync.Mutex
	initReady bool
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}
	prefix := strings.Trim(strings.TrimSpace(cfg.Prefix), "/")
	if prefix == "" {
		prefix = "reports"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Store{
		client:     client,
		bucketName: bucket,
		region:     region,
		prefix:     prefix,
	}, nil
}

// ensureBucket retries on every call until the bucket is known to exist.
func (s *S3Store) ensureBucket(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("store is nil")
	}
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.initReady {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return err
		}
	}
	s.initReady = true
	return nil
}

func (s *S3Store) Put(ctx context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error) {
	id, err := reportID(report)
	if err != nil {
		return nil, err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}
	payload, err := report.Marshal()
	if err != nil {
		return nil, err
	}
	info, err := s.client.PutObject(ctx, s.bucketName, s.objectKey(id), bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: s3ContentType,
	})
	if err != nil {
		return nil, err
	}
	sum := Summarize(report)
	sum.Id = id
	storedAt := info.LastModified
	if storedAt.IsZero() {
		storedAt = time.Now()
	}
	sum.StoredAt = storedAt.UnixMilli()
	return sum, nil
}

func (s *S3Store) Get(ctx context.Context, id string) (*reportv1.ReportData, error) {
	id = normalizeID(id)
	if id == "" {
		return nil, fmt.Errorf("report id is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}
	return s.load(ctx, s.objectKey(id))
}

func (s *S3Store) load(ctx context.Context, key string) (*reportv1.ReportData, error) {
	obj, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reportv1.Unmarshal[reportv1.ReportData](data)
}

// List reads every object under the prefix; S3 has no secondary index.
func (s *S3Store) List(ctx context.Context, opts ListOptions) ([]*reportv1.ReportSummary, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}
	prefix := s.prefix + "/"
	out := make([]*reportv1.ReportSummary, 0, 32)
	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if !strings.HasSuffix(obj.Key, ".pb") {
			continue
		}
		report, err := s.load(ctx, obj.Key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", obj.Key, err)
		}
		sum := Summarize(report)
		if sum.Id == "" {
			sum.Id = strings.TrimSuffix(strings.TrimPrefix(obj.Key, prefix), ".pb")
		}
		sum.StoredAt = obj.LastModified.UnixMilli()
		if opts.matches(sum) {
			out = append(out, sum)
		}
	}
	sortNewestFirst(out)
	return opts.truncate(out), nil
}

func (s *S3Store) Delete(ctx context.Context, id string) (bool, error) {
	id = normalizeID(id)
	if id == "" {
		return false, fmt.Errorf("report id is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return false, fmt.Errorf("ensure bucket: %w", err)
	}
	key := s.objectKey(id)
	if _, err := s.client.StatObject(ctx, s.bucketName, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *S3Store) objectKey(id string) string {
	return s.prefix + "/" + strings.TrimLeft(id, "/") + ".pb"
}
