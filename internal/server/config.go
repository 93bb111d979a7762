package server

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
)

// Config holds the descriptor defaults applied when a tool call omits them.
type Config struct {
	// Angles is the number of orientation bins.
	Angles int

	// CellWidth and CellHeight are the cell size in pixels.
	CellWidth  int
	CellHeight int

	// Debug enables per-request logging on stderr.
	Debug bool
}

// DefaultConfig returns 9 bins over 8x8 cells.
func DefaultConfig() Config {
	return Config{Angles: 9, CellWidth: 8, CellHeight: 8}
}

// Environment variables holding descriptor defaults.
const (
	EnvAngles     = "HOG_MCP_ANGLES"
	EnvCellWidth  = "HOG_MCP_CELL_WIDTH"
	EnvCellHeight = "HOG_MCP_CELL_HEIGHT"
	EnvLogLevel   = "HOG_MCP_LOG_LEVEL"
)

// ConfigFromEnv starts from DefaultConfig and applies overrides from:
//   - HOG_MCP_ANGLES
//   - HOG_MCP_CELL_WIDTH
//   - HOG_MCP_CELL_HEIGHT
//   - HOG_MCP_LOG_LEVEL (debug enables debug logging)
//
// The resulting descriptor parameters are validated.
func ConfigFromEnv() (Config, error) {
	return ConfigFromEnvExcept()
}

// ConfigFromEnvExcept is ConfigFromEnv with the named variables left unread, for
// callers that take those settings from elsewhere. Skipped settings keep their
// DefaultConfig values.
func ConfigFromEnvExcept(skip ...string) (Config, error) {
	cfg := DefaultConfig()

	overrides := []struct {
		name   string
		target *int
	}{
		{EnvAngles, &cfg.Angles},
		{EnvCellWidth, &cfg.CellWidth},
		{EnvCellHeight, &cfg.CellHeight},
	}
	for _, o := range overrides {
		if skipped(o.name, skip) {
			continue
		}
		v := os.Getenv(o.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s=%q: %w", o.name, v, err)
		}
		*o.target = n
	}

	cfg.Debug = os.Getenv(EnvLogLevel) == "debug"

	if _, err := hog.New(cfg.Angles, cfg.CellWidth, cfg.CellHeight); err != nil {
		return Config{}, fmt.Errorf("invalid descriptor settings in environment: %w", err)
	}
	return cfg, nil
}

func skipped(name string, skip []string) bool {
	for _, s := range skip {
		if s == name {
			return true
		}
	}
	return false
}
