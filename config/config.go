package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// API client configuration
	API APIConfig

	// Logger configuration
	Logger LoggerConfig

	// Read-cache configuration
	Cache CacheConfig
	Redis RedisConfig

	// Stub backend configuration (development/testing only)
	Stub   StubConfig
	Cookie CookieConfig
	MinIO  MinIOConfig
}

// APIConfig is the configuration for the backend API client.
// The base URL is the only externally visible knob of the client layer.
type APIConfig struct {
	BaseURL   string        `env:"DUKA_API_BASE_URL" envDefault:"http://localhost:8088"`
	Timeout   time.Duration `env:"DUKA_API_TIMEOUT" envDefault:"30s"`
	UserAgent string        `env:"DUKA_API_USER_AGENT" envDefault:"printduka-admin/1.0"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// CacheConfig is the configuration for the shared list-query cache
type CacheConfig struct {
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	UseRedis bool          `env:"CACHE_USE_REDIS" envDefault:"false"`
}

// RedisConfig is the configuration for Redis
// Note: Only standalone mode is supported
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// StubConfig is the configuration for the development backend
type StubConfig struct {
	Host          string `env:"STUB_HOST" envDefault:"0.0.0.0"`
	Port          int    `env:"STUB_PORT" envDefault:"8088"`
	Mode          string `env:"STUB_MODE" envDefault:"release"`
	SessionSecret string `env:"STUB_SESSION_SECRET"`
	CORSOrigins   string `env:"STUB_CORS_ORIGINS" envDefault:"http://localhost:3000"`
}

// CookieConfig is the configuration for session cookies issued by the stub
type CookieConfig struct {
	Domain         string `env:"COOKIE_DOMAIN"`
	Secure         bool   `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite       string `env:"COOKIE_SAMESITE" envDefault:"Lax"`
	MaxAge         int    `env:"COOKIE_MAX_AGE" envDefault:"7200"`
	MaxAgeRemember int    `env:"COOKIE_MAX_AGE_REMEMBER" envDefault:"2592000"`
	Name           string `env:"COOKIE_NAME" envDefault:"duka_session"`
}

// MinIOConfig is the configuration for optional product-image storage
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region    string `env:"MINIO_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"duka-product-images"`
}

// Enabled reports whether image uploads should be persisted to MinIO.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStub reads configuration for the stub backend, which additionally
// requires a session secret.
func LoadStub() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.Stub.SessionSecret == "" {
		return nil, fmt.Errorf("STUB_SESSION_SECRET is required")
	}
	if len(cfg.Stub.SessionSecret) < 32 {
		return nil, fmt.Errorf("STUB_SESSION_SECRET must be at least 32 characters")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("DUKA_API_BASE_URL is required")
	}
	if cfg.Cache.UseRedis && cfg.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when CACHE_USE_REDIS is set")
	}
	if cfg.Cookie.Name == "" {
		return fmt.Errorf("COOKIE_NAME is required")
	}
	return nil
}
