package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		changed  map[string]bool
		expected func(*Config)
		wantErr  bool
	}{
		{
			name: "applies env vars",
			env: map[string]string{
				"ENOCHIAN_INPUT":           "/env/in.txt",
				"ENOCHIAN_FORMAT":          "json",
				"ENOCHIAN_WORKERS":         "2",
				"ENOCHIAN_DEBOUNCE":        "2s",
				"ENOCHIAN_ENTROPY_CEILING": "1.5",
				"ENOCHIAN_CREATE_SAMPLE":   "true",
			},
			changed: map[string]bool{},
			expected: func(c *Config) {
				c.Input = "/env/in.txt"
				c.Format = "json"
				c.Workers = 2
				c.DebounceDelay = 2 * time.Second
				c.Constants.EntropyCeiling = 1.5
				c.CreateSample = true
			},
		},
		{
			name:     "respects changed flags",
			env:      map[string]string{"ENOCHIAN_OVERFLOW": "clamp", "ENOCHIAN_LOG_LEVEL": "debug"},
			changed:  map[string]bool{"overflow": true},
			expected: func(c *Config) { c.LogLevel = "debug" },
		},
		{
			name:     "applies zero entropy ceiling",
			env:      map[string]string{"ENOCHIAN_ENTROPY_CEILING": "0"},
			changed:  map[string]bool{},
			expected: func(c *Config) { c.Constants.EntropyCeiling = 0 },
		},
		{
			name:    "invalid int",
			env:     map[string]string{"ENOCHIAN_WORKERS": "many"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "invalid float",
			env:     map[string]string{"ENOCHIAN_ENTROPY_CEILING": "low"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "invalid duration",
			env:     map[string]string{"ENOCHIAN_DEBOUNCE": "later"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := DefaultConfig()
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			want := DefaultConfig()
			tt.expected(&want)
			if cfg != want {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, want)
			}
		})
	}
}

func TestConfigPrecedence(t *testing.T) {
	fc := FileConfig{
		Input:    "/file/in.txt",
		Format:   "yaml",
		Overflow: "clamp",
	}

	t.Setenv("ENOCHIAN_FORMAT", "json")
	t.Setenv("ENOCHIAN_INPUT", "/env/in.txt")

	changed := map[string]bool{"input": true}
	cfg := DefaultConfig()
	cfg.Input = "/cli/in.txt"

	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	// CLI > Env > File
	if cfg.Input != "/cli/in.txt" {
		t.Errorf("Input = %v, want /cli/in.txt (CLI should win)", cfg.Input)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %v, want json (env should override file)", cfg.Format)
	}
	if cfg.Overflow != "clamp" {
		t.Errorf("Overflow = %v, want clamp (file should set)", cfg.Overflow)
	}
}
