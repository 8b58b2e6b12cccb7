package app

import (
	"context"
	"os"
	"sync"

	logAdapter "github.com/bft-labs/enochian/internal/adapters/log"
	"github.com/bft-labs/enochian/internal/ports"
)

// mapSource implements ports.SourceReader from memory.
type mapSource map[string]string

func (m mapSource) ReadSource(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, ok := m[name]
	if !ok {
		return "", os.ErrNotExist
	}
	return text, nil
}

// recordingLogger captures messages by level.
type recordingLogger struct {
	logAdapter.NoopLogger

	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Info(msg string, fields ...ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(msg string, fields ...ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(msg string, fields ...ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func contains(msgs []string, want string) bool {
	for _, m := range msgs {
		if m == want {
			return true
		}
	}
	return false
}
