package codec

import "unicode/utf16"

// JavaScript encodes and decodes JavaScript string-literal escapes: \xHH
// for Basic Latin, \uHHHH above it (surrogate pairs for astral planes), and
// the fixed single-character table (\n, \t, \\, ...) on decode.
var JavaScript Codec = javaScriptCodec{}

type javaScriptCodec struct{}

// jsShortEscapes is the fixed single-character escape table recognized on
// decode. \0 decodes to NUL per legacy JavaScript semantics.
var jsShortEscapes = map[rune]rune{
	'0':  0x00,
	'b':  0x08,
	't':  0x09,
	'n':  0x0a,
	'v':  0x0b,
	'f':  0x0c,
	'r':  0x0d,
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
	'/':  '/',
}

func (javaScriptCodec) Name() string { return "JavaScriptCodec" }

func (javaScriptCodec) EncodeCharacter(immune []rune, r rune) string {
	if isAlphanumeric(r) || containsRune(immune, r) {
		return string(r)
	}
	if r < 0x100 {
		return "\\x" + hexByteUpper(byte(r))
	}
	if r > 0xffff {
		hi, lo := utf16.EncodeRune(r)
		return jsUnicodeEscape(hi) + jsUnicodeEscape(lo)
	}
	return jsUnicodeEscape(r)
}

func jsUnicodeEscape(r rune) string {
	return "\\u" + hexByteUpper(byte(r>>8)) + hexByteUpper(byte(r))
}

func (javaScriptCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '\\' {
		ps.Reset()
		return 0, false
	}
	switch c := ps.Next(); c {
	case 'x', 'X':
		b, ok := ps.nextHexByte()
		if !ok {
			ps.Reset()
			return 0, false
		}
		return rune(b), true
	case 'u', 'U':
		r, ok := decodeUnicodeEscape(ps, true)
		if !ok {
			ps.Reset()
			return 0, false
		}
		return r, true
	default:
		if r, ok := jsShortEscapes[c]; ok {
			return r, true
		}
		ps.Reset()
		return 0, false
	}
}

// decodeUnicodeEscape parses the four hex digits of a \uHHHH escape, the
// cursor being just past the 'u'. When the value is a high surrogate and a
// matching low-surrogate escape follows immediately, the pair is combined
// into one code point; an unpaired surrogate decodes to U+FFFD. The
// caseFold flag controls whether an uppercase 'U' introduces the second
// half of a pair (JavaScript tolerates it, JSON does not).
func decodeUnicodeEscape(ps *PushbackString, caseFold bool) (rune, bool) {
	hi, ok := nextHex4(ps)
	if !ok {
		return 0, false
	}
	if !utf16.IsSurrogate(hi) {
		return hi, true
	}
	if hi >= 0xdc00 {
		// Low surrogate with no preceding high half.
		return 0xfffd, true
	}
	pos := ps.position()
	if ps.Next() != '\\' {
		ps.restore(pos)
		return 0xfffd, true
	}
	u := ps.Next()
	if u != 'u' && !(caseFold && u == 'U') {
		ps.restore(pos)
		return 0xfffd, true
	}
	lo, ok := nextHex4(ps)
	if !ok || lo < 0xdc00 || lo > 0xdfff {
		ps.restore(pos)
		return 0xfffd, true
	}
	return utf16.DecodeRune(hi, lo), true
}

// nextHex4 consumes exactly four hex digits; cursor restored on failure.
func nextHex4(ps *PushbackString) (rune, bool) {
	pos := ps.position()
	var v rune
	for i := 0; i < 4; i++ {
		d := hexValue(ps.Next())
		if d < 0 {
			ps.restore(pos)
			return 0, false
		}
		v = v<<4 | rune(d)
	}
	return v, true
}
