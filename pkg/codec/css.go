package codec

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// CSS encodes and decodes CSS string escapes: a backslash followed by one
// to six hex digits, optionally terminated by a single whitespace character
// that is consumed with the escape.
var CSS Codec = cssCodec{}

type cssCodec struct{}

func (cssCodec) Name() string { return "CSSCodec" }

func (cssCodec) EncodeCharacter(immune []rune, r rune) string {
	if isAlphanumeric(r) || containsRune(immune, r) {
		return string(r)
	}
	// The trailing space terminates the hex run so a following literal hex
	// digit is not swallowed into the escape.
	return "\\" + strconv.FormatInt(int64(r), 16) + " "
}

func (cssCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '\\' {
		ps.Reset()
		return 0, false
	}
	var value int64
	digits := 0
	for digits < 6 && isHexDigit(ps.Peek()) {
		value = value<<4 | int64(hexValue(ps.Next()))
		digits++
	}
	if digits == 0 {
		ps.Reset()
		return 0, false
	}
	if isCSSWhitespace(ps.Peek()) {
		ps.Next()
	}
	if value > utf8.MaxRune || value == 0 || utf16.IsSurrogate(rune(value)) {
		return utf8.RuneError, true
	}
	return rune(value), true
}

func isCSSWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}
