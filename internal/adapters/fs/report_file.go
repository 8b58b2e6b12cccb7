package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bft-labs/enochian/internal/ports"
	"github.com/bft-labs/enochian/internal/report"
)

// ReportFile implements ports.ReportWriter by writing each report to a file.
// An empty path writes to the configured stream instead.
type ReportFile struct {
	path   string
	format report.Format
	out    io.Writer
}

// NewReportFile creates a ReportFile. When path is empty reports go to out.
func NewReportFile(path string, format report.Format, out io.Writer) *ReportFile {
	return &ReportFile{path: path, format: format, out: out}
}

// Write renders r and persists it atomically.
// Uses atomic write (write to temp file, then rename) so readers never see a partial report.
func (f *ReportFile) Write(ctx context.Context, r report.Report) error {
	var buf bytes.Buffer
	if err := report.Encode(&buf, r, f.format); err != nil {
		return err
	}

	if f.path == "" {
		_, err := f.out.Write(buf.Bytes())
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, f.path)
}

// BatchReportPath names the report for the index-th batch input inside dir.
// The index prefix keeps names unique when inputs share a base name.
func BatchReportPath(dir string, index int, name string, format report.Format) string {
	ext := format.String()
	if format == report.FormatText {
		ext = "txt"
	}
	return filepath.Join(dir, fmt.Sprintf("%03d-%s.report.%s", index, filepath.Base(name), ext))
}

// Path returns the report file path, or "" when writing to a stream.
func (f *ReportFile) Path() string {
	return f.path
}

var _ ports.ReportWriter = (*ReportFile)(nil)
