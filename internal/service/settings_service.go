package service

import (
	"context"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

// SiteSettings exposes the host application's settings store. The only
// setting the directory cares about is its own enable flag, which can be
// toggled at any time and is therefore re-read on every refresh and every
// listing request.
type SiteSettings interface {
	DirectoryEnabled(ctx context.Context) bool
}

const directoryEnabledKey = "site_settings:enable_user_directory"

type redisSiteSettings struct {
	rdb      *redis.Client
	fallback bool
}

// NewRedisSiteSettings reads the enable flag from the shared settings
// store in redis, falling back to the configured default when the key is
// absent or the store is unreachable.
func NewRedisSiteSettings(rdb *redis.Client, fallback bool) SiteSettings {
	return &redisSiteSettings{rdb: rdb, fallback: fallback}
}

func (s *redisSiteSettings) DirectoryEnabled(ctx context.Context) bool {
	val, err := s.rdb.Get(ctx, directoryEnabledKey).Result()
	if err == redis.Nil {
		return s.fallback
	}
	if err != nil {
		log.Printf("Failed to read %s, using default %v: %v", directoryEnabledKey, s.fallback, err)
		return s.fallback
	}

	switch strings.ToLower(strings.TrimSpace(val)) {
	case "t", "true", "1":
		return true
	case "f", "false", "0":
		return false
	default:
		log.Printf("Unrecognized %s value %q, using default %v", directoryEnabledKey, val, s.fallback)
		return s.fallback
	}
}

type staticSiteSettings struct {
	enabled bool
}

// NewStaticSiteSettings pins the enable flag to a fixed value, for
// deployments without redis and for tests.
func NewStaticSiteSettings(enabled bool) SiteSettings {
	return &staticSiteSettings{enabled: enabled}
}

func (s *staticSiteSettings) DirectoryEnabled(context.Context) bool {
	return s.enabled
}
