package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/encodekit/pkg/codec"
)

func TestHTMLEntityEncodeCharacter(t *testing.T) {
	immune := []rune{',', '.', '-', '_', ' '}

	tests := []struct {
		name     string
		input    rune
		expected string
	}{
		{name: "alphanumeric passes through", input: 'a', expected: "a"},
		{name: "digit passes through", input: '7', expected: "7"},
		{name: "immune character passes through", input: '-', expected: "-"},
		{name: "less-than uses named entity", input: '<', expected: "&lt;"},
		{name: "ampersand uses named entity", input: '&', expected: "&amp;"},
		{name: "quote uses named entity", input: '"', expected: "&quot;"},
		{name: "eacute uses named entity", input: 'é', expected: "&eacute;"},
		{name: "unnamed character uses hex reference", input: 'ሴ', expected: "&#x1234;"},
		{name: "nul is replaced not encoded", input: 0x00, expected: "�"},
		{name: "c1 control is replaced", input: 0x85, expected: "�"},
		{name: "tab survives as reference", input: '\t', expected: "&#x9;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codec.HTMLEntity.EncodeCharacter(immune, tt.input))
		})
	}
}

func TestHTMLEntityDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		fired    int
	}{
		{name: "named entity", input: "&lt;", expected: "<", fired: 1},
		{name: "named entity without semicolon", input: "&amp", expected: "&", fired: 1},
		{name: "longest match wins", input: "&amperiod", expected: "&eriod", fired: 1},
		{name: "decimal reference", input: "&#38;", expected: "&", fired: 1},
		{name: "hex reference", input: "&#x26;", expected: "&", fired: 1},
		{name: "uppercase hex introducer", input: "&#X26;", expected: "&", fired: 1},
		{name: "numeric reference without semicolon", input: "&#38", expected: "&", fired: 1},
		{name: "case sensitive names", input: "&LT;", expected: "&LT;", fired: 0},
		{name: "bare ampersand left alone", input: "AT&T", expected: "AT&T", fired: 0},
		{name: "empty reference left alone", input: "&#;", expected: "&#;", fired: 0},
		{name: "unknown name left alone", input: "&bogus;", expected: "&bogus;", fired: 0},
		{name: "out of range reference degrades", input: "&#x110000;", expected: "�", fired: 1},
		{name: "surrogate reference degrades", input: "&#xD800;", expected: "�", fired: 1},
		{name: "mixed text", input: "a&lt;b&gt;c", expected: "a<b>c", fired: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, n := codec.Decode(codec.HTMLEntity, tt.input)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.fired, n)
		})
	}
}

func TestHTMLEntityRoundTrip(t *testing.T) {
	for _, r := range []rune{'<', '>', '&', '"', 'é', '€', 'ሴ'} {
		encoded := codec.HTMLEntity.EncodeCharacter(nil, r)
		decoded, n := codec.Decode(codec.HTMLEntity, encoded)
		assert.Equal(t, string(r), decoded, "round trip of %q", r)
		assert.Equal(t, 1, n)
	}
}
