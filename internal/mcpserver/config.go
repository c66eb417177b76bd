package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/wordfmt/wordformat"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultSource is used when a tool call omits "from".
	DefaultSource wordformat.Format

	// OverridesFile is an override table consulted by every conversion.
	OverridesFile string

	// MaxBatch caps the number of texts in a convert_batch call.
	MaxBatch int

	// MaxInputSize caps the byte length of each text.
	MaxInputSize int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from WORDFMT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultSource: envFormat("WORDFMT_DEFAULT_SOURCE", wordformat.UpperUnderscore),
		OverridesFile: os.Getenv("WORDFMT_OVERRIDES_FILE"),
		MaxBatch:      envInt("WORDFMT_MAX_BATCH", 1000),
		MaxInputSize:  envInt("WORDFMT_MAX_INPUT_SIZE", 64*1024),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envFormat(key string, fallback wordformat.Format) wordformat.Format {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := wordformat.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return f
}
