package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/encodekit/pkg/codec"
)

func TestJavaScriptEncodeCharacter(t *testing.T) {
	immune := []rune{',', '.', '_'}

	tests := []struct {
		name     string
		input    rune
		expected string
	}{
		{name: "alphanumeric passes through", input: 'k', expected: "k"},
		{name: "immune character passes through", input: '.', expected: "."},
		{name: "angle bracket uses hex escape", input: '<', expected: `\x3C`},
		{name: "quote uses hex escape", input: '"', expected: `\x22`},
		{name: "newline uses hex escape", input: '\n', expected: `\x0A`},
		{name: "basic multilingual plane uses unicode escape", input: '€', expected: `\u20AC`},
		{name: "astral plane uses surrogate pair", input: '😀', expected: `\uD83D\uDE00`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codec.JavaScript.EncodeCharacter(immune, tt.input))
		})
	}
}

func TestJavaScriptDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		fired    int
	}{
		{name: "short escape newline", input: `a\nb`, expected: "a\nb", fired: 1},
		{name: "short escape backslash", input: `\\`, expected: `\`, fired: 1},
		{name: "short escape nul", input: `\0`, expected: "\x00", fired: 1},
		{name: "hex escape", input: `\x3C`, expected: "<", fired: 1},
		{name: "unicode escape", input: `\u20AC`, expected: "€", fired: 1},
		{name: "surrogate pair combines", input: `\uD83D\uDE00`, expected: "😀", fired: 1},
		{name: "unpaired high surrogate degrades", input: `\uD83Dx`, expected: "�x", fired: 1},
		{name: "unpaired low surrogate degrades", input: `\uDE00`, expected: "�", fired: 1},
		{name: "truncated hex escape left alone", input: `\x3`, expected: `\x3`, fired: 0},
		{name: "truncated unicode escape left alone", input: `\u20A`, expected: `\u20A`, fired: 0},
		{name: "unknown escape left alone", input: `\q`, expected: `\q`, fired: 0},
		{name: "trailing backslash left alone", input: `a\`, expected: `a\`, fired: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, n := codec.Decode(codec.JavaScript, tt.input)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.fired, n)
		})
	}
}
