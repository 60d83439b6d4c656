package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/encodekit/pkg/encoder"
)

func TestGetCanonicalizedURI(t *testing.T) {
	e := encoder.New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain uri unchanged",
			input:    "http://example.com/path",
			expected: "http://example.com/path",
		},
		{
			name:     "encoded path segment decoded",
			input:    "http://host/%2e%2e?a=%26b",
			expected: "http://host/..?a=&b",
		},
		{
			name:     "query pair order preserved",
			input:    "http://h/p?b=2&a=1",
			expected: "http://h/p?b=2&a=1",
		},
		{
			name:     "valueless query name",
			input:    "http://h/p?flag&x=1",
			expected: "http://h/p?flag&x=1",
		},
		{
			name:     "delimiters inside values stay positional",
			input:    "http://h/p?x=%26y%3D1",
			expected: "http://h/p?x=&y=1",
		},
		{
			name:     "userinfo and fragment",
			input:    "http://user:pw@h/p#%2e",
			expected: "http://user:pw@h/p#.",
		},
		{
			name:     "relative reference",
			input:    "/a/b%20c",
			expected: "/a/b c",
		},
		{
			name:     "opaque mailto uri kept whole",
			input:    "mailto:user@example.com",
			expected: "mailto:user@example.com",
		},
		{
			name:     "opaque part is canonicalized",
			input:    "mailto:first%20last@example.com",
			expected: "mailto:first last@example.com",
		},
		{
			name:     "opaque uri with query and fragment",
			input:    "mailto:user@example.com?subject=%26x#top",
			expected: "mailto:user@example.com?subject=&x#top",
		},
		{
			name:     "urn kept whole",
			input:    "urn:isbn:0451450523",
			expected: "urn:isbn:0451450523",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := e.GetCanonicalizedURI(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestGetCanonicalizedURIErrors(t *testing.T) {
	e := encoder.New()

	t.Run("unparsable uri", func(t *testing.T) {
		_, err := e.GetCanonicalizedURI("http://[::1")
		assert.ErrorIs(t, err, encoder.ErrInvalidURI)
	})

	t.Run("layered encoding in a component", func(t *testing.T) {
		_, err := e.GetCanonicalizedURI("http://h/%252e")
		assert.ErrorIs(t, err, encoder.ErrIntrusionDetected)
	})
}
