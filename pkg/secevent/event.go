package secevent

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Severity classifies how an event was handled.
type Severity string

const (
	// SeverityWarning marks a detected but tolerated condition.
	SeverityWarning Severity = "warning"
	// SeverityIntrusion marks a condition that was fatal to the call under
	// the active policy.
	SeverityIntrusion Severity = "intrusion"
)

// Condition names the encoding anomaly that triggered an event.
type Condition string

const (
	// ConditionMultipleEncoding: the same scheme was applied more than
	// once to the same data.
	ConditionMultipleEncoding Condition = "multiple_encoding"
	// ConditionMixedEncoding: two or more different schemes were applied
	// to the same data.
	ConditionMixedEncoding Condition = "mixed_encoding"
)

// maxInputSample bounds how much of the offending input is carried on an
// event; attack payloads can be arbitrarily large.
const maxInputSample = 256

// Event is a single security event entry.
type Event struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Severity  Severity  `json:"severity"`
	Condition Condition `json:"condition,omitempty"`
	Codecs    []string  `json:"codecs,omitempty"`
	Input     string    `json:"input,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventOption applies configuration to an Event during creation.
type EventOption func(*Event)

// WithCondition records the anomaly that triggered the event.
func WithCondition(c Condition) EventOption {
	return func(e *Event) { e.Condition = c }
}

// WithCodecs records which codecs were involved, in decode order.
func WithCodecs(names ...string) EventOption {
	return func(e *Event) { e.Codecs = names }
}

// WithInput attaches a truncated sample of the offending input. The cut
// lands on a rune boundary so the sample stays valid UTF-8.
func WithInput(input string) EventOption {
	return func(e *Event) {
		if len(input) > maxInputSample {
			cut := maxInputSample
			for cut > 0 && !utf8.RuneStart(input[cut]) {
				cut--
			}
			input = input[:cut]
		}
		e.Input = input
	}
}

// WithMessage attaches a human-readable description.
func WithMessage(msg string) EventOption {
	return func(e *Event) { e.Message = msg }
}

// New creates an event with a fresh ID and timestamp.
func New(action string, severity Severity, opts ...EventOption) Event {
	e := Event{
		ID:        uuid.New().String(),
		Action:    action,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
