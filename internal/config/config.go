// Package config loads oxbow.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"oxbow/internal/def"
	"oxbow/internal/trace"
)

// FileName is the name Find looks for.
const FileName = "oxbow.toml"

// Config is the decoded oxbow.toml. Path is empty for Default().
type Config struct {
	Path     string          `toml:"-"`
	Parallel ParallelConfig  `toml:"parallel"`
	Trace    TraceConfig     `toml:"trace"`
	Cache    CacheConfig     `toml:"cache"`
	Defs     map[string]bool `toml:"defs"`
}

type ParallelConfig struct {
	// Jobs bounds parallel visitation; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"` // "-" or "" for stderr
	Format string `toml:"format"`

	// Mode is stream, ring or both. A ring is printed when a command fails.
	Mode     string `toml:"mode"`
	RingSize int    `toml:"ring_size"`
}

type CacheConfig struct {
	// Dir overrides $XDG_CACHE_HOME/oxbow.
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

// Default is the configuration used when no oxbow.toml exists.
func Default() *Config {
	return &Config{
		Trace: TraceConfig{Level: "off", Output: "-", Format: "auto", Mode: "stream", RingSize: trace.DefaultRingSize},
	}
}

// Find walks up from startDir looking for oxbow.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path on top of Default and validates the result. Keys absent
// from the file keep their defaults; unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	return cfg, nil
}

// Discover loads the nearest oxbow.toml above startDir, or Default when
// there is none.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Parallel.Jobs < 0 {
		return fmt.Errorf("[parallel].jobs must not be negative, got %d", c.Parallel.Jobs)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if c.Trace.RingSize < 0 {
		return fmt.Errorf("[trace].ring_size must not be negative, got %d", c.Trace.RingSize)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("[defs]: %w", err)
	}
	return nil
}

// Policy applies the [defs] overrides to def.DefaultPolicy.
func (c *Config) Policy() (def.Policy, error) {
	return def.DefaultPolicy().WithOverrides(c.Defs)
}

// TraceLevel returns the parsed [trace].level.
func (c *Config) TraceLevel() trace.Level {
	lvl, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return trace.LevelOff
	}
	return lvl
}
