package config

import (
	"fmt"
)

// Broker names accepted by RealtimeConfig.Broker.
const (
	BrokerMemory = "memory"
	BrokerRedis  = "redis"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Realtime.validate(c.Redis); err != nil {
		return fmt.Errorf("realtime: %w", err)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	switch c.Board.InviteDefaultRole {
	case "developer", "viewer":
	default:
		return fmt.Errorf("board.invite_default_role must be developer or viewer (got %q)", c.Board.InviteDefaultRole)
	}

	if c.Activity.DefaultPageSize <= 0 || c.Activity.MaxPageSize < c.Activity.DefaultPageSize {
		return fmt.Errorf("activity: page sizes must satisfy 0 < default <= max (got %d, %d)",
			c.Activity.DefaultPageSize, c.Activity.MaxPageSize)
	}

	return nil
}

func (r *RealtimeConfig) validate(redis RedisConfig) error {
	switch r.Broker {
	case BrokerMemory:
	case BrokerRedis:
		if redis.URL == "" {
			return fmt.Errorf("broker %q requires redis.url", r.Broker)
		}
	default:
		return fmt.Errorf("broker must be %q or %q (got %q)", BrokerMemory, BrokerRedis, r.Broker)
	}
	if r.SendBuffer <= 0 {
		return fmt.Errorf("send_buffer must be > 0 (got %d)", r.SendBuffer)
	}
	if r.MaxMessageBytes <= 0 {
		return fmt.Errorf("max_message_bytes must be > 0 (got %d)", r.MaxMessageBytes)
	}
	if r.PongTimeout <= 0 {
		return fmt.Errorf("pong_timeout must be > 0 (got %v)", r.PongTimeout)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	if s.Endpoint == "" || s.AccessKey == "" || s.SecretKey == "" || s.Bucket == "" {
		return fmt.Errorf("endpoint, access_key, secret_key and bucket are required when enabled")
	}
	if s.MaxBytes <= 0 {
		return fmt.Errorf("max_bytes must be > 0 (got %d)", s.MaxBytes)
	}
	return nil
}
