package app

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"

	"github.com/bft-labs/enochian/internal/domain"
)

func TestRunBatch(t *testing.T) {
	src := mapSource{
		"a.txt":        "AAAA",
		"empty.txt":    "",
		"distinct.txt": string([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}),
	}
	names := []string{"a.txt", "missing.txt", "distinct.txt", "empty.txt"}

	var built atomic.Int32
	factory := func() (*Pipeline, error) {
		built.Add(1)
		return NewPipeline(domain.DefaultConstants())
	}

	outcomes, err := RunBatch(context.Background(), names, src, factory, 2)
	if err != nil {
		t.Fatalf("RunBatch() unexpected error: %v", err)
	}
	if len(outcomes) != len(names) {
		t.Fatalf("len(outcomes) = %d, want %d", len(outcomes), len(names))
	}
	if got := built.Load(); got != int32(len(names)) {
		t.Errorf("factory called %d times, want one pipeline per input (%d)", got, len(names))
	}

	for i, o := range outcomes {
		if o.Name != names[i] {
			t.Errorf("outcomes[%d].Name = %v, want %v", i, o.Name, names[i])
		}
	}

	if outcomes[0].Err != nil || !outcomes[0].Report.ChecksumMatches {
		t.Errorf("a.txt outcome = %+v, want matching coin", outcomes[0])
	}
	if !errors.Is(outcomes[1].Err, os.ErrNotExist) {
		t.Errorf("missing.txt error = %v, want not-exist", outcomes[1].Err)
	}
	if !errors.Is(outcomes[2].Err, domain.ErrValidation) {
		t.Errorf("distinct.txt error = %v, want ErrValidation", outcomes[2].Err)
	}
	if outcomes[3].Err != nil || outcomes[3].Report.Length != 1 {
		t.Errorf("empty.txt outcome = %+v, want singleton coin", outcomes[3])
	}
}

func TestRunBatch_ConfigurationErrorAborts(t *testing.T) {
	c := domain.DefaultConstants()
	c.PerfectedTarget = 495

	factory := func() (*Pipeline, error) { return NewPipeline(c) }
	outcomes, err := RunBatch(context.Background(), []string{"a", "b"}, mapSource{"a": "A", "b": "B"}, factory, 0)
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("RunBatch() error = %v, want ErrConfiguration", err)
	}
	if outcomes != nil {
		t.Errorf("outcomes = %v, want nil", outcomes)
	}
}

func TestRunBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	factory := func() (*Pipeline, error) { return NewPipeline(domain.DefaultConstants()) }
	_, err := RunBatch(ctx, []string{"a"}, mapSource{"a": "AAAA"}, factory, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunBatch() error = %v, want context.Canceled", err)
	}
}

func TestRunBatch_Empty(t *testing.T) {
	factory := func() (*Pipeline, error) { return NewPipeline(domain.DefaultConstants()) }
	outcomes, err := RunBatch(context.Background(), nil, mapSource{}, factory, 4)
	if err != nil {
		t.Fatalf("RunBatch() unexpected error: %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("len(outcomes) = %d, want 0", len(outcomes))
	}
}
