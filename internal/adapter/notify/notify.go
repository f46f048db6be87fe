// Package notify holds domain.Notifier sinks for transient rider notices.
package notify

import (
	"log/slog"
	"sync"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
)

// Recorder keeps notices in arrival order so a response can carry them.
type Recorder struct {
	mu      sync.Mutex
	notices []string
}

func (r *Recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, message)
}

// Notices returns a copy of everything recorded so far. Never nil.
func (r *Recorder) Notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.notices))
	copy(out, r.notices)
	return out
}

// Logger writes notices to a structured log.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Notify(message string) {
	l.logger.Info("rider notice", "message", message)
}

// Fanout delivers each notice to every sink.
type Fanout []domain.Notifier

func (f Fanout) Notify(message string) {
	for _, n := range f {
		n.Notify(message)
	}
}
