package secevent_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/encodekit/pkg/secevent"
)

func TestNew(t *testing.T) {
	t.Run("populates identity fields", func(t *testing.T) {
		event := secevent.New("canonicalize", secevent.SeverityWarning)

		_, err := uuid.Parse(event.ID)
		require.NoError(t, err)
		assert.Equal(t, "canonicalize", event.Action)
		assert.Equal(t, secevent.SeverityWarning, event.Severity)
		assert.False(t, event.CreatedAt.IsZero())
	})

	t.Run("each event gets a distinct id", func(t *testing.T) {
		a := secevent.New("canonicalize", secevent.SeverityWarning)
		b := secevent.New("canonicalize", secevent.SeverityWarning)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("options applied", func(t *testing.T) {
		event := secevent.New("canonicalize", secevent.SeverityIntrusion,
			secevent.WithCondition(secevent.ConditionMixedEncoding),
			secevent.WithCodecs("PercentCodec", "HTMLEntityCodec"),
			secevent.WithInput("%26lt;"),
			secevent.WithMessage("layered encoding"),
		)

		assert.Equal(t, secevent.ConditionMixedEncoding, event.Condition)
		assert.Equal(t, []string{"PercentCodec", "HTMLEntityCodec"}, event.Codecs)
		assert.Equal(t, "%26lt;", event.Input)
		assert.Equal(t, "layered encoding", event.Message)
	})

	t.Run("input sample is truncated", func(t *testing.T) {
		long := strings.Repeat("%25", 200)
		event := secevent.New("canonicalize", secevent.SeverityIntrusion,
			secevent.WithInput(long),
		)
		assert.Len(t, event.Input, 256)
		assert.Equal(t, long[:256], event.Input)
	})

	t.Run("truncation lands on a rune boundary", func(t *testing.T) {
		long := strings.Repeat("a", 255) + "€€"
		event := secevent.New("canonicalize", secevent.SeverityIntrusion,
			secevent.WithInput(long),
		)
		assert.Equal(t, strings.Repeat("a", 255), event.Input)
		assert.True(t, utf8.ValidString(event.Input))
	})
}
