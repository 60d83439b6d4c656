package codec

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// HTMLEntity encodes and decodes HTML character entities: named references
// from the HTML4/XML set, plus decimal and hexadecimal numeric references.
// On decode the trailing semicolon is optional, matching the leniency of
// legacy browsers; canonicalization depends on accepting what a browser
// would render.
var HTMLEntity Codec = htmlEntityCodec{}

type htmlEntityCodec struct{}

func (htmlEntityCodec) Name() string { return "HTMLEntityCodec" }

func (htmlEntityCodec) EncodeCharacter(immune []rune, r rune) string {
	return htmlEncodeCharacter(immune, r)
}

// htmlEncodeCharacter is shared with the XPath codec, which uses the HTML
// entity grammar under its own name.
func htmlEncodeCharacter(immune []rune, r rune) string {
	if isAlphanumeric(r) || containsRune(immune, r) {
		return string(r)
	}
	// Control characters have no legal place in HTML content; they are
	// replaced rather than encoded so they cannot round-trip back in.
	if illegalInHTML(r) {
		return string(utf8.RuneError)
	}
	if name, ok := runeToEntity[r]; ok {
		return "&" + name + ";"
	}
	return "&#x" + strconv.FormatInt(int64(r), 16) + ";"
}

func illegalInHTML(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return r <= 0x1f || (r >= 0x7f && r <= 0x9f)
}

func (htmlEntityCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	return htmlDecodeCharacter(ps)
}

func htmlDecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '&' {
		ps.Reset()
		return 0, false
	}
	if ps.PeekIs('#') {
		ps.Next()
		if r, ok := decodeNumericEntity(ps); ok {
			return r, true
		}
		ps.Reset()
		return 0, false
	}
	if r, ok := decodeNamedEntity(ps); ok {
		return r, true
	}
	ps.Reset()
	return 0, false
}

// decodeNumericEntity parses the digits of a numeric character reference,
// the cursor being just past "&#". The trailing semicolon is optional.
func decodeNumericEntity(ps *PushbackString) (rune, bool) {
	hex := false
	if ps.PeekIs('x') || ps.PeekIs('X') {
		hex = true
		ps.Next()
	}
	var value int64
	digits := 0
	for ps.HasNext() {
		r := ps.Peek()
		var d int
		if hex {
			d = hexValue(r)
		} else if r >= '0' && r <= '9' {
			d = int(r - '0')
		} else {
			d = -1
		}
		if d < 0 {
			break
		}
		ps.Next()
		digits++
		if value <= utf8.MaxRune {
			base := int64(10)
			if hex {
				base = 16
			}
			value = value*base + int64(d)
		}
	}
	if digits == 0 {
		return 0, false
	}
	if ps.PeekIs(';') {
		ps.Next()
	}
	if value > utf8.MaxRune || utf16.IsSurrogate(rune(value)) {
		return utf8.RuneError, true
	}
	return rune(value), true
}

// decodeNamedEntity parses a named reference, the cursor being just past
// "&". Longest match wins so "&amperiod" decodes "amp" and leaves "eriod".
func decodeNamedEntity(ps *PushbackString) (rune, bool) {
	rest := ps.Remainder()
	limit := maxEntityNameLen
	if len(rest) < limit {
		limit = len(rest)
	}
	for n := limit; n > 0; n-- {
		if r, ok := entityToRune[rest[:n]]; ok {
			ps.advance(n)
			if ps.PeekIs(';') {
				ps.Next()
			}
			return r, true
		}
	}
	return 0, false
}
