package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/encodekit/pkg/codec"
)

func TestLDAPFilterEncodeCharacter(t *testing.T) {
	tests := []struct {
		name     string
		input    rune
		immune   []rune
		expected string
	}{
		{name: "letter passes through", input: 'a', expected: "a"},
		{name: "single quote passes through", input: '\'', expected: "'"},
		{name: "parenthesis escaped", input: '(', expected: `\28`},
		{name: "closing parenthesis escaped", input: ')', expected: `\29`},
		{name: "asterisk escaped by default", input: '*', expected: `\2a`},
		{name: "asterisk immune when allowed", input: '*', immune: []rune{'*'}, expected: "*"},
		{name: "backslash escaped", input: '\\', expected: `\5c`},
		{name: "nul escaped", input: 0x00, expected: `\00`},
		{name: "slash always escaped", input: '/', expected: `\2f`},
		{name: "high code point escaped byte-wise", input: 'é', expected: `\c3\a9`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codec.LDAPFilter.EncodeCharacter(tt.immune, tt.input))
		})
	}
}

func TestLDAPDNEncodeCharacter(t *testing.T) {
	tests := []struct {
		name     string
		input    rune
		expected string
	}{
		{name: "letter passes through", input: 'x', expected: "x"},
		{name: "space passes through mid-string", input: ' ', expected: " "},
		{name: "hash passes through mid-string", input: '#', expected: "#"},
		{name: "comma escaped", input: ',', expected: `\2c`},
		{name: "plus escaped", input: '+', expected: `\2b`},
		{name: "double quote escaped", input: '"', expected: `\22`},
		{name: "angle brackets escaped", input: '<', expected: `\3c`},
		{name: "semicolon escaped", input: ';', expected: `\3b`},
		{name: "equals passes through", input: '=', expected: "="},
		{name: "backslash escaped", input: '\\', expected: `\5c`},
		{name: "slash always escaped", input: '/', expected: `\2f`},
		{name: "high code point escaped byte-wise", input: 'é', expected: `\c3\a9`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codec.LDAPDN.EncodeCharacter(nil, tt.input))
		})
	}
}

func TestLDAPDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		fired    int
	}{
		{name: "hex escape", input: `\2a`, expected: "*", fired: 1},
		{name: "uppercase hex", input: `\2A`, expected: "*", fired: 1},
		{name: "multi-byte assembly", input: `\c3\a9`, expected: "é", fired: 1},
		{name: "mixed text", input: `a\28b\29`, expected: "a(b)", fired: 2},
		{name: "truncated escape left alone", input: `\2`, expected: `\2`, fired: 0},
		{name: "non-hex left alone", input: `\zz`, expected: `\zz`, fired: 0},
		{name: "bare continuation degrades", input: `\a9`, expected: "�", fired: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, n := codec.Decode(codec.LDAPFilter, tt.input)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.fired, n)
		})
	}
}
