package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Monitor  MonitorConfig  `json:"monitor"`
	Risk     RiskConfig     `json:"risk"`
	Notify   NotifyConfig   `json:"notify"`
	WS       WSConfig       `json:"ws"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type MonitorConfig struct {
	// DefaultGrace is the dwell threshold used when the user has no
	// zone history to take one from.
	DefaultGrace          time.Duration `json:"default_grace"`
	StatusRefreshInterval time.Duration `json:"status_refresh_interval"`
	SweepInterval         time.Duration `json:"sweep_interval"`
	EvictAfter            time.Duration `json:"evict_after"`
	ZoneCacheTTL          time.Duration `json:"zone_cache_ttl"`
}

type RiskConfig struct {
	URL     string        `json:"url"`
	Timeout time.Duration `json:"timeout"`
	Enabled bool          `json:"enabled"`
}

type NotifyConfig struct {
	EmergencyURL string `json:"emergency_url"`
	LedgerURL    string `json:"ledger_url"`
	QueueKey     string `json:"queue_key"`
	Disabled     bool   `json:"disabled"`
}

type WSConfig struct {
	QueueSize int `json:"queue_size"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "suraksha_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Monitor: MonitorConfig{
			DefaultGrace:          getEnvDuration("MONITOR_DEFAULT_GRACE", 5*time.Minute),
			StatusRefreshInterval: getEnvDuration("MONITOR_STATUS_REFRESH_INTERVAL", 30*time.Second),
			SweepInterval:         getEnvDuration("MONITOR_SWEEP_INTERVAL", 30*time.Second),
			EvictAfter:            getEnvDuration("MONITOR_EVICT_AFTER", 24*time.Hour),
			ZoneCacheTTL:          getEnvDuration("MONITOR_ZONE_CACHE_TTL", time.Minute),
		},
		Risk: RiskConfig{
			URL:     getEnv("RISK_SERVICE_URL", ""),
			Timeout: getEnvDuration("RISK_SERVICE_TIMEOUT", 2*time.Second),
			Enabled: getEnvBool("RISK_SERVICE_ENABLED", false),
		},
		Notify: NotifyConfig{
			EmergencyURL: getEnv("NOTIFY_EMERGENCY_URL", ""),
			LedgerURL:    getEnv("NOTIFY_LEDGER_URL", ""),
			QueueKey:     getEnv("NOTIFY_QUEUE_KEY", "notifications:queue"),
			Disabled:     getEnvBool("NOTIFY_DISABLED", false),
		},
		WS: WSConfig{
			QueueSize: getEnvInt("WS_QUEUE_SIZE", 64),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("config loaded",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Risk.Enabled && c.Risk.URL == "" {
		return errors.New("RISK_SERVICE_URL required when RISK_SERVICE_ENABLED=true")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
