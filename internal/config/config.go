package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreDisk     = "disk"
	StoreS3       = "s3"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string
	Store    StoreConfig
	Cache    CacheConfig
	Artifact ArtifactConfig
}

type StoreConfig struct {
	Kind        string
	DiskRoot    string
	DatabaseURL string
	RedisURL    string
	RedisPrefix string
	RedisTTL    time.Duration
}

// CacheConfig sizes the read-through cache placed in front of every store
// except memory. MaxEntries of zero disables the cache.
type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type ArtifactConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

func (a ArtifactConfig) CanUseS3() bool {
	return a.Endpoint != "" && a.AccessKey != "" && a.SecretKey != "" && a.Bucket != ""
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	port := env("PORT")
	if port == "" {
		port = ":8080"
	} else if !strings.Contains(port, ":") {
		port = ":" + port
	}

	appEnv := firstNonEmpty(env("APP_ENV"), "local")

	st, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}
	cache, err := loadCacheConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		Env:      appEnv,
		LogLevel: firstNonEmpty(env("LOG_LEVEL"), "info"),
		Store:    st,
		Cache:    cache,
		Artifact: loadArtifactConfig(appEnv),
	}, nil
}

func loadStoreConfig() (StoreConfig, error) {
	cfg := StoreConfig{
		DiskRoot:    firstNonEmpty(env("REPORT_DISK_ROOT"), "tmp/reports"),
		DatabaseURL: env("DATABASE_URL"),
		RedisURL:    env("REDIS_URL"),
		RedisPrefix: firstNonEmpty(env("REPORT_REDIS_PREFIX"), "shotdiff"),
	}
	ttl, err := duration("REPORT_REDIS_TTL", 0)
	if err != nil {
		return cfg, err
	}
	cfg.RedisTTL = ttl

	kind := strings.ToLower(env("REPORT_STORE"))
	if kind == "" {
		switch {
		case cfg.DatabaseURL != "":
			kind = StorePostgres
		case cfg.RedisURL != "":
			kind = StoreRedis
		default:
			kind = StoreMemory
		}
	}
	switch kind {
	case StoreMemory, StoreDisk, StoreS3:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("REPORT_STORE=postgres requires DATABASE_URL")
		}
	case StoreRedis:
		if cfg.RedisURL == "" {
			return cfg, fmt.Errorf("REPORT_STORE=redis requires REDIS_URL")
		}
	default:
		return cfg, fmt.Errorf("unknown REPORT_STORE %q", kind)
	}
	cfg.Kind = kind
	return cfg, nil
}

func loadCacheConfig() (CacheConfig, error) {
	ttl, err := duration("REPORT_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return CacheConfig{}, err
	}
	entries := 256
	if raw := env("REPORT_CACHE_MAX_ENTRIES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return CacheConfig{}, fmt.Errorf("REPORT_CACHE_MAX_ENTRIES: %q is not a non-negative integer", raw)
		}
		entries = n
	}
	return CacheConfig{TTL: ttl, MaxEntries: entries}, nil
}

func loadArtifactConfig(appEnv string) ArtifactConfig {
	local := strings.EqualFold(appEnv, "local")
	endpoint := env("ARTIFACT_S3_ENDPOINT")
	if local {
		endpoint = firstNonEmpty(env("ARTIFACT_MINIO_ENDPOINT"), endpoint)
	}
	return ArtifactConfig{
		Endpoint:  endpoint,
		Region:    firstNonEmpty(env("ARTIFACT_S3_REGION"), "us-east-1"),
		AccessKey: firstNonEmpty(env("ARTIFACT_S3_ACCESS_KEY"), env("MINIO_ROOT_USER")),
		SecretKey: firstNonEmpty(env("ARTIFACT_S3_SECRET_KEY"), env("MINIO_ROOT_PASSWORD")),
		Bucket:    firstNonEmpty(env("ARTIFACT_S3_BUCKET"), "shotdiff-reports"),
		Prefix:    firstNonEmpty(env("ARTIFACT_S3_PREFIX"), "reports"),
		UseSSL:    resolveUseSSL(local),
	}
}

func resolveUseSSL(local bool) bool {
	raw := env("ARTIFACT_S3_USE_SSL")
	if raw == "" {
		return !local
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return !local
	}
	return v
}

func duration(key string, def time.Duration) (time.Duration, error) {
	raw := env(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
