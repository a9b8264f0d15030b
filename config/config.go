package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
	"github.com/Clement-Micard/ExtendedStorage/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultEnumBatchSize is the number of directory entries fetched from
	// the OS per read during enumeration (large-fetch hint)
	DefaultEnumBatchSize = 256

	// DefaultOverwriteOnCopy keeps existing destination files in place
	DefaultOverwriteOnCopy = false

	// DefaultCollision is the collision policy tree operations use when
	// creating destination folders
	DefaultCollision = extendedstorage.OpenIfExists
)

// Config contains runtime configuration values for the storage layer.
type Config struct {
	LogLvl          util.LogLevel                   // Global log level (Default info)
	EnumBatchSize   int                             // Directory entries fetched per OS read (Default 256)
	OverwriteOnCopy bool                            // Whether tree copies replace existing destination files (Default false)
	Collision       extendedstorage.CollisionOption // Collision policy for engine-created destination folders (Default openIfExists)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions. LogLvl and Collision are carried as their string names and
// converted during Merge.
type ConfigOverride struct {
	LogLvl          *string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	EnumBatchSize   *int    `yaml:"enum_batch_size,omitempty" json:"enum_batch_size,omitempty"`
	OverwriteOnCopy *bool   `yaml:"overwrite_on_copy,omitempty" json:"overwrite_on_copy,omitempty"`
	Collision       *string `yaml:"collision,omitempty" json:"collision,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:          util.InfoLevel,
		EnumBatchSize:   DefaultEnumBatchSize,
		OverwriteOnCopy: DefaultOverwriteOnCopy,
		Collision:       DefaultCollision,
	}
}

// NewConfig creates a Config from defaults with override merged on top.
// A nil override yields the defaults unchanged.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// Unrecognized log level or collision names keep the current value.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		if lvl, ok := ParseLogLevel(*override.LogLvl); ok {
			c.LogLvl = lvl
		}
	}
	if override.EnumBatchSize != nil {
		c.EnumBatchSize = *override.EnumBatchSize
	}
	if override.OverwriteOnCopy != nil {
		c.OverwriteOnCopy = *override.OverwriteOnCopy
	}
	if override.Collision != nil {
		if opt, ok := ParseCollision(*override.Collision); ok {
			c.Collision = opt
		}
	}
}

// ParseLogLevel maps a level name to its util.LogLevel value.
func ParseLogLevel(name string) (util.LogLevel, bool) {
	switch strings.ToLower(name) {
	case "trace":
		return util.TraceLevel, true
	case "debug":
		return util.DebugLevel, true
	case "info":
		return util.InfoLevel, true
	case "warn", "warning":
		return util.WarnLevel, true
	case "error":
		return util.ErrorLevel, true
	default:
		return util.InfoLevel, false
	}
}

// ParseCollision maps a collision policy name to its option value.
func ParseCollision(name string) (extendedstorage.CollisionOption, bool) {
	switch name {
	case "failIfExists":
		return extendedstorage.FailIfExists, true
	case "openIfExists":
		return extendedstorage.OpenIfExists, true
	default:
		return DefaultCollision, false
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
