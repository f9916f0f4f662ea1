package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Summary  SummaryConfig  `yaml:"summary"`
	Cache    CacheConfig    `yaml:"cache"`
	Postgres PostgresConfig `yaml:"postgres"`
	Storage  StorageConfig  `yaml:"storage"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// SummaryConfig defines the limits of the summarizer domain.
type SummaryConfig struct {
	DefaultSentences int           `yaml:"defaultSentences"`
	MaxSentences     int           `yaml:"maxSentences"`
	MaxInputLen      int           `yaml:"maxInputLen"`
	CacheTTL         time.Duration `yaml:"cacheTtl"`
	ArchiveSources   bool          `yaml:"archiveSources"`
}

// CacheConfig selects the summary cache backend.
type CacheConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// StorageConfig points at an S3-compatible bucket for archived sources.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// Enabled reports whether remote object storage is configured.
func (s StorageConfig) Enabled() bool {
	return strings.TrimSpace(s.Endpoint) != "" && strings.TrimSpace(s.Bucket) != ""
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("SUMMARY_DEFAULT_SENTENCES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.DefaultSentences = parsed
		}
	}
	if v := os.Getenv("SUMMARY_MAX_SENTENCES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MaxSentences = parsed
		}
	}
	if v := os.Getenv("SUMMARY_MAX_INPUT_LEN"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MaxInputLen = parsed
		}
	}
	if v := os.Getenv("SUMMARY_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Summary.CacheTTL = parsed
		}
	}
	if v := os.Getenv("SUMMARY_ARCHIVE_SOURCES"); v != "" {
		cfg.Summary.ArchiveSources = parseBool(v)
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Cache.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Cache.Valkey.Addr = v
	}
	if v := os.Getenv("VALKEY_PREFIX"); v != "" {
		cfg.Cache.Valkey.Prefix = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("STORAGE_ENDPOINT"); v != "" {
		cfg.Storage.Endpoint = v
	}
	if v := os.Getenv("STORAGE_ACCESS_KEY"); v != "" {
		cfg.Storage.AccessKey = v
	}
	if v := os.Getenv("STORAGE_SECRET_KEY"); v != "" {
		cfg.Storage.SecretKey = v
	}
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
	if v := os.Getenv("STORAGE_REGION"); v != "" {
		cfg.Storage.Region = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
			},
		},
		Summary: SummaryConfig{
			DefaultSentences: 3,
			MaxSentences:     20,
			MaxInputLen:      200000,
			CacheTTL:         6 * time.Hour,
			ArchiveSources:   true,
		},
		Cache: CacheConfig{
			Valkey: ValkeyConfig{Prefix: "news-summarizer"},
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
		},
		Storage: StorageConfig{
			Bucket: "news-summarizer-sources",
			Region: "auto",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Summary.DefaultSentences <= 0 {
		return errors.New("summary.defaultSentences must be positive")
	}
	if c.Summary.MaxSentences < c.Summary.DefaultSentences {
		return errors.New("summary.maxSentences cannot be lower than summary.defaultSentences")
	}
	if c.Summary.MaxInputLen <= 0 {
		return errors.New("summary.maxInputLen must be positive")
	}
	if c.Summary.CacheTTL < 0 {
		return errors.New("summary.cacheTtl cannot be negative")
	}
	if c.Cache.Valkey.Enabled && strings.TrimSpace(c.Cache.Valkey.Addr) == "" {
		return errors.New("cache.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.Postgres.MinConns < 0 || c.Postgres.MaxConns < 0 {
		return errors.New("postgres pool sizes cannot be negative")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
