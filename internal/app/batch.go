package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/enochian/internal/ports"
	"github.com/bft-labs/enochian/internal/report"
)

// Factory builds a fresh Pipeline. Batch runs call it once per input so no
// two goroutines share a transformer.
type Factory func() (*Pipeline, error)

// Outcome is the result of one batch input.
type Outcome struct {
	Name   string
	Report report.Report
	Err    error
}

// RunBatch executes every named source concurrently, at most workers at a
// time (workers <= 0 means no limit). Outcomes keep the order of names.
//
// Read and validation failures are recorded per outcome. A factory error
// (inconsistent constants) aborts the batch and is returned.
func RunBatch(ctx context.Context, names []string, src ports.SourceReader, factory Factory, workers int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(names))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, name := range names {
		g.Go(func() error {
			p, err := factory()
			if err != nil {
				return err
			}

			text, err := src.ReadSource(gctx, name)
			if err != nil {
				outcomes[i] = Outcome{Name: name, Err: fmt.Errorf("read %s: %w", name, err)}
				return nil
			}

			r, err := p.Run(name, text)
			outcomes[i] = Outcome{Name: name, Report: r, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}
