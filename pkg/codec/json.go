package codec

// JSON encodes and decodes JSON string escapes per RFC 8259 §7. On encode
// every character outside the RFC's unescaped set (0x20-0x21, 0x23-0x5B,
// 0x5D-0x10FFFF) is escaped, preferring the short named escapes over \u
// where one exists. On decode surrogate pairs combine into a single code
// point; an unpaired surrogate decodes to U+FFFD.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

var jsonShortEscapes = map[rune]string{
	'"':  `\"`,
	'\\': `\\`,
	0x08: `\b`,
	0x0c: `\f`,
	0x0a: `\n`,
	0x0d: `\r`,
	0x09: `\t`,
}

var jsonDecodeEscapes = map[rune]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  0x08,
	'f':  0x0c,
	'n':  0x0a,
	'r':  0x0d,
	't':  0x09,
}

func (jsonCodec) Name() string { return "JSONCodec" }

// EncodeCharacter is range-based rather than allow-list based: the immune
// set is ignored because RFC 8259 fixes the unescaped set exactly.
func (jsonCodec) EncodeCharacter(_ []rune, r rune) string {
	if esc, ok := jsonShortEscapes[r]; ok {
		return esc
	}
	if r >= 0x20 {
		return string(r)
	}
	return `\u00` + hexByteLower(byte(r))
}

func (jsonCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '\\' {
		ps.Reset()
		return 0, false
	}
	c := ps.Next()
	if c == 'u' {
		r, ok := decodeUnicodeEscape(ps, false)
		if !ok {
			ps.Reset()
			return 0, false
		}
		return r, true
	}
	if r, ok := jsonDecodeEscapes[c]; ok {
		return r, true
	}
	ps.Reset()
	return 0, false
}
