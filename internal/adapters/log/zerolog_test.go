package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/enochian/internal/ports"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf))

	adapter.Info("coin minted",
		ports.String("run_id", "abc"),
		ports.Int("sum", 496),
		ports.Float64("entropy", 0.5),
		ports.Bool("matched", true),
		ports.Duration("took", time.Second),
		ports.Err(errors.New("boom")),
		ports.Any("data", []int{1, 2}),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}

	if got["message"] != "coin minted" {
		t.Errorf("message = %v, want coin minted", got["message"])
	}
	if got["level"] != "info" {
		t.Errorf("level = %v, want info", got["level"])
	}
	if got["run_id"] != "abc" {
		t.Errorf("run_id = %v, want abc", got["run_id"])
	}
	if got["sum"] != float64(496) {
		t.Errorf("sum = %v, want 496", got["sum"])
	}
	if got["matched"] != true {
		t.Errorf("matched = %v, want true", got["matched"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v, want boom", got["error"])
	}
}

func TestZerologAdapter_Level(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	adapter.Debug("hidden")
	adapter.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	adapter.Warn("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("expected warn output, got %q", buf.String())
	}
}

func TestNewConsoleAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewConsoleAdapter(&buf, zerolog.InfoLevel)

	adapter.Error("harmony approximated", ports.Int("checksum", 240))
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("harmony approximated")) {
		t.Errorf("console output %q missing message", out)
	}
	if !bytes.Contains([]byte(out), []byte("checksum")) || !bytes.Contains([]byte(out), []byte("240")) {
		t.Errorf("console output %q missing field", out)
	}

	if got := adapter.Logger().GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("Logger().GetLevel() = %v, want info", got)
	}
}
