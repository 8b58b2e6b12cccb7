package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/enochian/internal/ports"
	"github.com/bft-labs/enochian/internal/report"
)

// DefaultDebounceDelay is how long the watcher waits after the last change
// before re-running the pipeline.
const DefaultDebounceDelay = 100 * time.Millisecond

// Handler receives the outcome of every watched run.
// It is called from the watcher's goroutines, one call at a time.
type Handler func(r report.Report, err error)

// WatchConfig holds configuration options for a Watcher.
type WatchConfig struct {
	// Path is the input file to watch.
	Path string

	// DebounceDelay is the delay to wait after a file change before running.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// Watcher re-runs a pipeline whenever its input file is written or created.
type Watcher struct {
	path     string
	delay    time.Duration
	pipeline *Pipeline
	src      ports.SourceReader
	handle   Handler
	logger   ports.Logger

	mu    sync.Mutex
	timer *time.Timer
	wg    sync.WaitGroup

	// runMu serializes runs; the pipeline is not safe for concurrent use.
	runMu sync.Mutex
}

// NewWatcher creates a Watcher. Runs are serialized, so one pipeline is enough.
func NewWatcher(cfg WatchConfig, p *Pipeline, src ports.SourceReader, handle Handler, logger ports.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	return &Watcher{
		path:     filepath.Clean(cfg.Path),
		delay:    cfg.DebounceDelay,
		pipeline: p,
		src:      src,
		handle:   handle,
		logger:   logger,
	}
}

// Run executes the pipeline once, then again after every change to the
// watched file, until ctx is canceled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info("watching source", ports.String("path", w.path), ports.Duration("debounce", w.delay))
	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				w.stop()
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				w.stop()
				return nil
			}
			w.logger.Error("watcher error", ports.Err(err))
		}
	}
}

// schedule (re)arms the debounce timer.
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}

	w.wg.Add(1)
	w.timer = time.AfterFunc(w.delay, func() {
		defer w.wg.Done()
		if ctx.Err() != nil {
			return
		}
		w.runOnce(ctx)
	})
}

// stop drops a pending run and waits for an in-flight one.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *Watcher) runOnce(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	text, err := w.src.ReadSource(ctx, w.path)
	if err != nil {
		w.logger.Error("read source failed", ports.String("path", w.path), ports.Err(err))
		w.handle(report.Report{}, fmt.Errorf("read %s: %w", w.path, err))
		return
	}

	r, err := w.pipeline.Run(w.path, text)
	if err != nil {
		w.logger.Error("pipeline run failed", ports.String("path", w.path), ports.Err(err))
	}
	w.handle(r, err)
}
