package secevent

import (
	"context"
	"log/slog"
	"sync"
)

// Sink receives security events. Implementations must be safe for
// concurrent use and should return quickly; the reporting side never waits
// on a sink.
type Sink interface {
	Record(ctx context.Context, event Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(context.Context, Event) {}

// LogSink writes events to a slog logger: warnings at WARN, intrusions at
// ERROR.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink wraps logger; a nil logger falls back to slog.Default.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{log: logger}
}

func (s *LogSink) Record(ctx context.Context, event Event) {
	level := slog.LevelWarn
	if event.Severity == SeverityIntrusion {
		level = slog.LevelError
	}
	s.log.LogAttrs(ctx, level, "security event",
		slog.String("event_id", event.ID),
		slog.String("action", event.Action),
		slog.String("severity", string(event.Severity)),
		slog.String("condition", string(event.Condition)),
		slog.Any("codecs", event.Codecs),
		slog.String("input", event.Input),
		slog.String("message", event.Message),
	)
}

// MemorySink collects events in memory for test assertions.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink returns an empty collecting sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Record(_ context.Context, event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a snapshot of everything recorded so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Reset discards recorded events.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
