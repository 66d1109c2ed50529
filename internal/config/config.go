package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Storage   StorageConfig   `yaml:"storage"`
	Realtime  RealtimeConfig  `yaml:"realtime"`
	Board     BoardConfig     `yaml:"board"`
	Activity  ActivityConfig  `yaml:"activity"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`

	// TrustForwardedFor takes the client address from X-Forwarded-For.
	TrustForwardedFor bool `yaml:"trust_forwarded_for" env:"SERVER_TRUST_FORWARDED_FOR" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	// StatementTimeout is set as the session statement_timeout; zero disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// AuthConfig holds bearer token settings. Tokens are issued by the identity
// provider with the shared secret; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"boardly"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	APIPerMinute       int           `yaml:"api_per_minute"       env:"RATE_LIMIT_API_PER_MINUTE"       env-default:"600"`
	WebsocketPerMinute int           `yaml:"websocket_per_minute" env:"RATE_LIMIT_WEBSOCKET_PER_MINUTE" env-default:"30"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// RedisConfig holds the Redis connection used for cross-instance broadcast.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// StorageConfig holds the S3-compatible attachment store settings.
type StorageConfig struct {
	Enabled    bool          `yaml:"enabled"     env:"STORAGE_ENABLED"     env-default:"false"`
	Endpoint   string        `yaml:"endpoint"    env:"STORAGE_ENDPOINT"`
	AccessKey  string        `yaml:"access_key"  env:"STORAGE_ACCESS_KEY"`
	SecretKey  string        `yaml:"secret_key"  env:"STORAGE_SECRET_KEY"`
	Bucket     string        `yaml:"bucket"      env:"STORAGE_BUCKET"      env-default:"boardly-attachments"`
	UseSSL     bool          `yaml:"use_ssl"     env:"STORAGE_USE_SSL"     env-default:"false"`
	PresignTTL time.Duration `yaml:"presign_ttl" env:"STORAGE_PRESIGN_TTL" env-default:"15m"`
	MaxBytes   int64         `yaml:"max_bytes"   env:"STORAGE_MAX_BYTES"   env-default:"10485760"`
}

// RealtimeConfig holds board broadcast channel settings.
type RealtimeConfig struct {
	Broker          string        `yaml:"broker"            env:"REALTIME_BROKER"            env-default:"memory"`
	SendBuffer      int           `yaml:"send_buffer"       env:"REALTIME_SEND_BUFFER"       env-default:"64"`
	MaxMessageBytes int64         `yaml:"max_message_bytes" env:"REALTIME_MAX_MESSAGE_BYTES" env-default:"65536"`
	WriteTimeout    time.Duration `yaml:"write_timeout"     env:"REALTIME_WRITE_TIMEOUT"     env-default:"10s"`
	PongTimeout     time.Duration `yaml:"pong_timeout"      env:"REALTIME_PONG_TIMEOUT"      env-default:"60s"`
	AllowedOrigins  string        `yaml:"allowed_origins"   env:"REALTIME_ALLOWED_ORIGINS"   env-default:"*"`
}

// PingInterval is how often the server pings an idle websocket.
func (c RealtimeConfig) PingInterval() time.Duration {
	return c.PongTimeout * 9 / 10
}

// BoardConfig holds board policy settings.
type BoardConfig struct {
	InviteDefaultRole string `yaml:"invite_default_role" env:"BOARD_INVITE_DEFAULT_ROLE" env-default:"developer"`
}

// ActivityConfig holds activity log listing settings.
type ActivityConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"ACTIVITY_DEFAULT_PAGE_SIZE" env-default:"50"`
	MaxPageSize     int `yaml:"max_page_size"     env:"ACTIVITY_MAX_PAGE_SIZE"     env-default:"200"`
}
