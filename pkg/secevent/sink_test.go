package secevent_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/encodekit/pkg/logger"
	"github.com/dmitrymomot/encodekit/pkg/secevent"
)

func newTextLogger(w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
		logger.WithOutput(w),
	)
}

func TestMemorySink(t *testing.T) {
	sink := secevent.NewMemorySink()
	ctx := context.Background()

	sink.Record(ctx, secevent.New("canonicalize", secevent.SeverityWarning))
	sink.Record(ctx, secevent.New("canonicalize", secevent.SeverityIntrusion))

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, secevent.SeverityWarning, events[0].Severity)
	assert.Equal(t, secevent.SeverityIntrusion, events[1].Severity)

	// The snapshot is a copy; mutating it must not affect the sink.
	events[0].Action = "tampered"
	assert.Equal(t, "canonicalize", sink.Events()[0].Action)

	sink.Reset()
	assert.Empty(t, sink.Events())
}

func TestLogSink(t *testing.T) {
	t.Run("warning logs at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		sink := secevent.NewLogSink(newTextLogger(&buf))

		sink.Record(context.Background(), secevent.New("canonicalize", secevent.SeverityWarning,
			secevent.WithCondition(secevent.ConditionMultipleEncoding),
			secevent.WithCodecs("PercentCodec"),
		))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "security event")
		assert.Contains(t, out, "condition=multiple_encoding")
		assert.Contains(t, out, "PercentCodec")
	})

	t.Run("intrusion logs at error level", func(t *testing.T) {
		var buf bytes.Buffer
		sink := secevent.NewLogSink(newTextLogger(&buf))

		sink.Record(context.Background(), secevent.New("canonicalize", secevent.SeverityIntrusion))

		assert.Contains(t, buf.String(), "level=ERROR")
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		assert.NotPanics(t, func() {
			secevent.NewLogSink(nil)
		})
	})
}

func TestNopSink(t *testing.T) {
	assert.NotPanics(t, func() {
		secevent.NopSink{}.Record(context.Background(), secevent.New("canonicalize", secevent.SeverityWarning))
	})
}
