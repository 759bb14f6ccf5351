package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInlineSize caps inline spec content passed via the content input.
	MaxInlineSize int64

	// MaxSpecSize caps the size of specs loaded from files or URLs.
	// Zero means the loader default applies.
	MaxSpecSize int64

	// AllowPrivateIPs disables the SSRF guard on URL inputs.
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OPENAPI2JSONSCHEMA_* environment
// variables. Invalid values log a warning and fall back to the hardcoded
// default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInlineSize:   envInt64("OPENAPI2JSONSCHEMA_MAX_INLINE_SIZE", 5*1024*1024),
		MaxSpecSize:     envInt64("OPENAPI2JSONSCHEMA_MAX_SPEC_SIZE", 0),
		AllowPrivateIPs: envBool("OPENAPI2JSONSCHEMA_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		slog.Warn("invalid size env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
