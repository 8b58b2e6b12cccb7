package ports

import "context"

// SourceReader loads the raw text for a pipeline run.
type SourceReader interface {
	// ReadSource returns the full text identified by name.
	ReadSource(ctx context.Context, name string) (string, error)
}
