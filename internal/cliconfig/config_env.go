package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (ENOCHIAN_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("ENOCHIAN_INPUT"), &cfg.Input)
	s.setString("output", os.Getenv("ENOCHIAN_OUTPUT"), &cfg.Output)
	s.setString("format", os.Getenv("ENOCHIAN_FORMAT"), &cfg.Format)
	s.setString("overflow", os.Getenv("ENOCHIAN_OVERFLOW"), &cfg.Overflow)
	s.setString("log-level", os.Getenv("ENOCHIAN_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("workers", os.Getenv("ENOCHIAN_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("ENOCHIAN_DEBOUNCE"), &cfg.DebounceDelay); err != nil {
		return err
	}
	if err := s.setFloatFromString("entropy-ceiling", os.Getenv("ENOCHIAN_ENTROPY_CEILING"), &cfg.Constants.EntropyCeiling); err != nil {
		return err
	}

	s.setBoolFromString("create-sample", os.Getenv("ENOCHIAN_CREATE_SAMPLE"), &cfg.CreateSample)

	return nil
}
