package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	"github.com/yanqian/news-summarizer/internal/infra/config"
	"github.com/yanqian/news-summarizer/internal/infra/sourcestore"
	"github.com/yanqian/news-summarizer/internal/infra/summarycache"
	"github.com/yanqian/news-summarizer/internal/infra/summaryrepo"
)

func provideSummaryConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		DefaultSentences: cfg.Summary.DefaultSentences,
		MaxSentences:     cfg.Summary.MaxSentences,
		MaxInputLen:      cfg.Summary.MaxInputLen,
		CacheTTL:         cfg.Summary.CacheTTL,
		ArchiveSources:   cfg.Summary.ArchiveSources,
	}
}

func provideSummaryRepository(cfg *config.Config, logger *slog.Logger) (summarizer.Repository, func()) {
	fallback := summaryrepo.NewMemoryRepository()
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repository")
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback, noop
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	repo := summaryrepo.NewPostgresRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		logger.Error("postgres migration failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	logger.Info("postgres summary repository enabled")
	return repo, pool.Close
}

func provideSummaryCache(cfg *config.Config, logger *slog.Logger) (summarizer.Cache, func()) {
	noop := func() {}
	if !cfg.Cache.Valkey.Enabled {
		return summarycache.NewMemoryCache(), noop
	}
	opt, err := buildValkeyOptions(cfg.Cache.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return summarycache.NewMemoryCache(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return summarycache.NewMemoryCache(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return summarycache.NewMemoryCache(), noop
	}
	logger.Info("valkey summary cache enabled", "addr", cfg.Cache.Valkey.Addr)
	return summarycache.NewValkeyCache(client, cfg.Cache.Valkey.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideSourceStore(cfg *config.Config, logger *slog.Logger) summarizer.SourceStore {
	if !cfg.Storage.Enabled() {
		logger.Info("object storage not configured, archiving sources in memory")
		return sourcestore.NewMemoryStore()
	}
	store, err := sourcestore.NewS3Store(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.Region,
		logger,
	)
	if err != nil {
		logger.Error("failed to initialize object storage, archiving sources in memory", "error", err)
		return sourcestore.NewMemoryStore()
	}
	logger.Info("object storage source archive enabled", "bucket", cfg.Storage.Bucket)
	return store
}
