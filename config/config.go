package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override file values.
// Nested keys are separated by a double underscore: EVADMIN_SERVER__PORT.
const EnvPrefix = "EVADMIN_"

// Config represents the overall application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Log           LogConfig           `yaml:"log"`
	Selection     SelectionConfig     `yaml:"selection"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Refresh       RefreshConfig       `yaml:"refresh"`
	Push          PushConfig          `yaml:"push"`
	WorkerPool    WorkerPoolConfig    `yaml:"worker_pool"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-"`
	SecureCookies   bool          `yaml:"secure_cookies"`
	// AllowedOrigins are extra origins that may open the notification
	// websocket. The server's own origin is always allowed.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig holds the database connection configuration.
// A DSN starting with postgres:// or containing host= selects Postgres,
// anything else is handed to the SQLite driver.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	LogLevel               string `yaml:"log_level"`
	Seed                   bool   `yaml:"seed"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// SelectionConfig controls where master/detail selections are kept.
type SelectionConfig struct {
	Backend       string        `yaml:"backend"` // memory or redis
	TTLMinutes    int           `yaml:"ttl_minutes"`
	TTL           time.Duration `yaml:"-"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

// NotificationsConfig controls the toast queue.
type NotificationsConfig struct {
	TTLSeconds int           `yaml:"ttl_seconds"`
	TTL        time.Duration `yaml:"-"`
}

// RefreshConfig controls the simulated refresh latency.
type RefreshConfig struct {
	DelayMillis int           `yaml:"delay_millis"`
	Delay       time.Duration `yaml:"-"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// Enabled reports whether both VAPID keys are configured.
func (p PushConfig) Enabled() bool {
	return p.PublicKey != "" && p.PrivateKey != ""
}

// WorkerPoolConfig holds the configuration for the push worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// Load reads the configuration from the given path and overlays EVADMIN_*
// environment variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:evadmin.db?cache=shared"
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.Database.ConnMaxLifetimeMinutes <= 0 {
		cfg.Database.ConnMaxLifetimeMinutes = 30
	}
	if cfg.Database.LogLevel == "" {
		cfg.Database.LogLevel = "warn"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Selection.Backend == "" {
		cfg.Selection.Backend = "memory"
	}
	if cfg.Selection.TTLMinutes <= 0 {
		cfg.Selection.TTLMinutes = 30
	}
	cfg.Selection.TTL = time.Duration(cfg.Selection.TTLMinutes) * time.Minute

	if cfg.Notifications.TTLSeconds <= 0 {
		cfg.Notifications.TTLSeconds = 5
	}
	cfg.Notifications.TTL = time.Duration(cfg.Notifications.TTLSeconds) * time.Second

	if cfg.Refresh.DelayMillis <= 0 {
		cfg.Refresh.DelayMillis = 1500
	}
	cfg.Refresh.Delay = time.Duration(cfg.Refresh.DelayMillis) * time.Millisecond

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.WorkerPool.Size <= 0 {
		cfg.WorkerPool.Size = 1
	}
}
