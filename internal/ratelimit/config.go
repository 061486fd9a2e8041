package ratelimit

import (
	"strings"
)

// holds rate limiting configuration
type Config struct {
	// whether rate limiting is active
	Enabled bool

	// formatted rate, e.g. "20-M" for 20 requests per minute
	Rate string

	// redis key prefix for counters
	Prefix string

	// paths that bypass the limiter
	ExemptPaths []string
}

// returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Rate:    "20-M",
		Prefix:  "vibe:ratelimit",
		ExemptPaths: []string{
			"/health",
		},
	}
}

// checks if a path bypasses the limiter
func (c *Config) IsExemptPath(path string) bool {
	for _, ep := range c.ExemptPaths {
		if path == ep || strings.HasPrefix(path, ep+"/") {
			return true
		}
	}
	return false
}
