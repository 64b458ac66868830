package app

import (
	"fmt"

	"go.uber.org/zap"

	"shotdiff/internal/config"
	"shotdiff/internal/store"
)

type closer func() error

func initStore(cfg *config.Config, log *zap.Logger) (store.Store, closer, error) {
	origin, closeFn, err := openOrigin(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Store.Kind == config.StoreMemory || cfg.Cache.MaxEntries == 0 {
		return origin, closeFn, nil
	}
	cacheCfg := store.DefaultCacheConfig()
	cacheCfg.ReportTTL = cfg.Cache.TTL
	cacheCfg.ReportMaxEntries = cfg.Cache.MaxEntries
	log.Info("report cache enabled",
		zap.Duration("ttl", cacheCfg.ReportTTL),
		zap.Int("max_entries", cacheCfg.ReportMaxEntries),
	)
	return store.NewCachedStore(origin, cacheCfg), closeFn, nil
}

func openOrigin(cfg *config.Config, log *zap.Logger) (store.Store, closer, error) {
	noop := func() error { return nil }
	switch cfg.Store.Kind {
	case config.StoreMemory, "":
		log.Info("report store: in-memory")
		return store.NewMemoryStore(), noop, nil

	case config.StoreDisk:
		log.Info("report store: disk", zap.String("root", cfg.Store.DiskRoot))
		return store.NewDiskStore(cfg.Store.DiskRoot), noop, nil

	case config.StoreS3:
		if !cfg.Artifact.CanUseS3() {
			return nil, nil, fmt.Errorf("s3 report store needs endpoint, credentials and bucket")
		}
		s3Store, err := store.NewS3Store(store.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			Prefix:    cfg.Artifact.Prefix,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize s3 report store: %w", err)
		}
		log.Info("report store: s3",
			zap.String("bucket", cfg.Artifact.Bucket),
			zap.String("endpoint", cfg.Artifact.Endpoint),
		)
		return s3Store, noop, nil

	case config.StorePostgres:
		db, err := store.OpenPostgres(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("report store: postgres")
		return store.NewPostgresStore(db), db.Close, nil

	case config.StoreRedis:
		client, err := store.OpenRedis(cfg.Store.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("report store: redis",
			zap.String("prefix", cfg.Store.RedisPrefix),
			zap.Duration("ttl", cfg.Store.RedisTTL),
		)
		return store.NewRedisStore(client, store.RedisOptions{
			Prefix: cfg.Store.RedisPrefix,
			TTL:    cfg.Store.RedisTTL,
		}), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown report store %q", cfg.Store.Kind)
}
