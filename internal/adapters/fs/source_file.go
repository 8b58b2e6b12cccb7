package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bft-labs/enochian/internal/ports"
)

// SampleText is the reference input written by EnsureSample.
const SampleText = `Enochian Alchemy: The Dynamic Torus of Transformation
PSL(2,7) symmetry unfolds across 168 dimensions
Master Name Sum: 664 converges to Perfected Matter: 496
Through the Virgin's formula: ((58 + 13) * 7) - 1 = 496
Choronzon constrained, entropy minimized`

// DefaultSourcePath is where the sample input lives relative to the working directory.
var DefaultSourcePath = filepath.Join("data", "Dynamic_Torus.txt")

// SourceFiles implements ports.SourceReader over the local file system.
type SourceFiles struct{}

// NewSourceFiles creates a file-backed SourceReader.
func NewSourceFiles() *SourceFiles {
	return &SourceFiles{}
}

// ReadSource reads the whole file at path.
func (SourceFiles) ReadSource(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EnsureSample writes SampleText to path unless the file already exists.
// It reports whether a file was created.
func EnsureSample(path string) (bool, error) {
	if FileExists(path) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(SampleText), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

var _ ports.SourceReader = SourceFiles{}
