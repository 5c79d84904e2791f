package config

import (
	"time"
)

// Store drivers accepted by StoreConfig.Driver.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Store     StoreConfig     `yaml:"store"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Limits    Tunables        `yaml:"limits"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// StoreConfig selects the entity store backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"postgres"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"600"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// Tunables are the process-wide limits read by the services. The value is
// built once by Load and handed to each service by copy; nothing writes to
// it afterwards.
type Tunables struct {
	RecentlyViewedDecksMax int           `yaml:"recently_viewed_decks_max" env:"LIMITS_RECENTLY_VIEWED_DECKS_MAX" env-default:"50"`
	AnswersFeedLimit       int           `yaml:"answers_feed_limit"        env:"LIMITS_ANSWERS_FEED_LIMIT"        env-default:"100"`
	NameMaxLength          int           `yaml:"name_max_length"           env:"LIMITS_NAME_MAX_LENGTH"           env-default:"64"`
	MaxTags                int           `yaml:"max_tags"                  env:"LIMITS_MAX_TAGS"                  env-default:"10"`
	MaxTagID               int           `yaml:"max_tag_id"                env:"LIMITS_MAX_TAG_ID"                env-default:"1000"`
	MaxUsageIncrement      time.Duration `yaml:"max_usage_increment"       env:"LIMITS_MAX_USAGE_INCREMENT"       env-default:"24h"`
}

// DefaultTunables returns the limits used when no file or environment
// overrides them.
func DefaultTunables() Tunables {
	return Tunables{
		RecentlyViewedDecksMax: 50,
		AnswersFeedLimit:       100,
		NameMaxLength:          64,
		MaxTags:                10,
		MaxTagID:               1000,
		MaxUsageIncrement:      24 * time.Hour,
	}
}
