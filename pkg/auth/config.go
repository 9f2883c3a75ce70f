package auth

import "time"

const (
	// DefaultBlocklistPrefix is the Redis key prefix for revoked token ids.
	DefaultBlocklistPrefix = "auth:access:block:"
	// DefaultVersionPrefix is the Redis key prefix for per-subject session versions.
	DefaultVersionPrefix = "auth:token:ver:"
)

// Config controls token signing and verification. Only HMAC algorithms
// are accepted.
type Config struct {
	Secret          string
	Alg             string
	Issuer          string
	TTL             time.Duration
	ClockSkew       time.Duration
	BlocklistPrefix string
	VersionPrefix   string
}

// Defaults fills zero values.
func (c *Config) Defaults() {
	if c.Alg == "" {
		c.Alg = "HS256"
	}
	if c.TTL <= 0 {
		c.TTL = 30 * time.Minute
	}
	if c.ClockSkew < 0 {
		c.ClockSkew = 0
	}
	if c.BlocklistPrefix == "" {
		c.BlocklistPrefix = DefaultBlocklistPrefix
	}
	if c.VersionPrefix == "" {
		c.VersionPrefix = DefaultVersionPrefix
	}
}
