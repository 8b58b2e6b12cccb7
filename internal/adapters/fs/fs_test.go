package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/enochian/internal/report"
)

func TestEnsureSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "Dynamic_Torus.txt")

	created, err := EnsureSample(path)
	if err != nil {
		t.Fatalf("EnsureSample() error = %v", err)
	}
	if !created {
		t.Error("EnsureSample() created = false for a missing file")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if string(b) != SampleText {
		t.Errorf("sample content = %q, want SampleText", string(b))
	}

	if err := os.WriteFile(path, []byte("custom"), 0o644); err != nil {
		t.Fatalf("overwrite sample: %v", err)
	}
	created, err = EnsureSample(path)
	if err != nil {
		t.Fatalf("EnsureSample() second call error = %v", err)
	}
	if created {
		t.Error("EnsureSample() created = true for an existing file")
	}
	b, _ = os.ReadFile(path)
	if string(b) != "custom" {
		t.Errorf("EnsureSample() overwrote an existing file: %q", string(b))
	}
}

func TestSourceFiles_ReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("AAAA"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	src := NewSourceFiles()
	got, err := src.ReadSource(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadSource() error = %v", err)
	}
	if got != "AAAA" {
		t.Errorf("ReadSource() = %q, want AAAA", got)
	}

	if _, err := src.ReadSource(context.Background(), filepath.Join(dir, "missing.txt")); !os.IsNotExist(err) {
		t.Errorf("ReadSource() error = %v, want not-exist", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.ReadSource(ctx, path); err == nil {
		t.Error("ReadSource() expected error for canceled context")
	}
}

func TestReportFile_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "report.json")
	r := report.Report{RunID: "run-1", Checksum: 496, ChecksumTarget: 496, ChecksumMatches: true, Data: []int{124}}

	w := NewReportFile(path, report.FormatJSON, nil)
	if err := w.Write(context.Background(), r); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if w.Path() != path {
		t.Errorf("Path() = %v, want %v", w.Path(), path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var got report.Report
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if got.RunID != "run-1" || !got.ChecksumMatches {
		t.Errorf("report = %+v", got)
	}
	if FileExists(path + ".tmp") {
		t.Error("temp file left behind")
	}
}

func TestReportFile_WriteStream(t *testing.T) {
	var buf bytes.Buffer
	w := NewReportFile("", report.FormatText, &buf)

	if err := w.Write(context.Background(), report.Report{RunID: "run-2"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "run-2") {
		t.Errorf("stream output missing run id:\n%s", buf.String())
	}
}

func TestBatchReportPath(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a/in.txt", "b/in.txt", "a/in.txt"}

	seen := map[string]bool{}
	for i, name := range names {
		path := BatchReportPath(dir, i, name, report.FormatJSON)
		if seen[path] {
			t.Fatalf("BatchReportPath() reused %s for input %d", path, i)
		}
		seen[path] = true

		w := NewReportFile(path, report.FormatJSON, nil)
		if err := w.Write(context.Background(), report.Report{RunID: name, Source: name}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != len(names) {
		t.Errorf("got %d report files, want %d", len(entries), len(names))
	}

	if got := filepath.Base(BatchReportPath(dir, 1, "b/in.txt", report.FormatText)); got != "001-in.txt.report.txt" {
		t.Errorf("text report name = %v, want 001-in.txt.report.txt", got)
	}
	if got := filepath.Base(BatchReportPath(dir, 0, "in.txt", report.FormatYAML)); got != "000-in.txt.report.yaml" {
		t.Errorf("yaml report name = %v, want 000-in.txt.report.yaml", got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false for an existing file")
	}
	if FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("FileExists() = true for a missing file")
	}
}
