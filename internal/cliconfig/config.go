package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	adaptersfs "github.com/bft-labs/enochian/internal/adapters/fs"
	"github.com/bft-labs/enochian/internal/app"
	"github.com/bft-labs/enochian/internal/domain"
	"github.com/bft-labs/enochian/internal/report"
)

// Config holds CLI configuration for enochian.
type Config struct {
	Input  string
	Output string
	Format string

	Overflow string
	LogLevel string

	Workers       int
	DebounceDelay time.Duration
	CreateSample  bool

	Constants domain.PipelineConstants
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Input:         adaptersfs.DefaultSourcePath,
		Format:        report.FormatText.String(),
		Overflow:      domain.OverflowWrap.String(),
		LogLevel:      zerolog.InfoLevel.String(),
		Workers:       4,
		DebounceDelay: app.DefaultDebounceDelay,
		Constants:     domain.DefaultConstants(),
	}
}

// Validate checks the configuration for errors, including the constants self-check.
func (c *Config) Validate() error {
	if c.Input == "" {
		c.Input = adaptersfs.DefaultSourcePath
	}
	if _, err := c.ReportFormat(); err != nil {
		return err
	}
	if _, err := c.OverflowPolicy(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.DebounceDelay <= 0 {
		return fmt.Errorf("debounce delay must be positive")
	}
	return c.Constants.Validate()
}

// ReportFormat parses Format.
func (c Config) ReportFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}

// OverflowPolicy parses Overflow.
func (c Config) OverflowPolicy() (domain.OverflowPolicy, error) {
	return domain.ParseOverflowPolicy(c.Overflow)
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("parse log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, nil
	}
	return lvl, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int value from a pointer if not nil and flag not changed.
// Zero and negative values are applied; Validate decides whether they are usable.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatPtr sets a float64 value from a pointer if not nil and flag not changed.
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Any parsed value is applied, including zero.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setFloatPtr(flag, &f, dst)
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
