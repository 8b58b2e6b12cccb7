package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Input         string        `toml:"input"`
	Output        string        `toml:"output"`
	Format        string        `toml:"format"`
	Overflow      string        `toml:"overflow"`
	LogLevel      string        `toml:"log_level"`
	Workers       int           `toml:"workers"`
	DebounceDelay string        `toml:"debounce"`
	CreateSample  *bool         `toml:"create_sample"`
	Constants     FileConstants `toml:"constants"`
}

// FileConstants is the [constants] table. Absent keys keep the defaults;
// any present key is applied as written.
type FileConstants struct {
	MasterNameSum   *int     `toml:"master_name_sum"`
	PerfectedTarget *int     `toml:"perfected_target"`
	BlackCrossKey   *int     `toml:"black_cross_key"`
	EsotericD       *int     `toml:"esoteric_d"`
	Multiplier      *int     `toml:"multiplier"`
	EntropyCeiling  *float64 `toml:"entropy_ceiling"`
	ChecksumModulus *int     `toml:"checksum_modulus"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.enochian/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".enochian", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.Input)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("overflow", fc.Overflow, &cfg.Overflow)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	if err := s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}
	s.setBool("create-sample", fc.CreateSample, &cfg.CreateSample)

	// Constants have no flags; the file is their only override.
	c := &cfg.Constants
	s.setIntPtr("", fc.Constants.MasterNameSum, &c.MasterNameSum)
	s.setIntPtr("", fc.Constants.PerfectedTarget, &c.PerfectedTarget)
	s.setIntPtr("", fc.Constants.BlackCrossKey, &c.BlackCrossKey)
	s.setIntPtr("", fc.Constants.EsotericD, &c.EsotericD)
	s.setIntPtr("", fc.Constants.Multiplier, &c.Multiplier)
	s.setFloatPtr("", fc.Constants.EntropyCeiling, &c.EntropyCeiling)
	s.setIntPtr("", fc.Constants.ChecksumModulus, &c.ChecksumModulus)

	return nil
}
