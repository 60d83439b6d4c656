package codec

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// XML encodes characters for XML element content using the five predefined
// entities where available and hexadecimal character references otherwise.
// Unlike HTML, the decode grammar requires the terminating semicolon.
var XML Codec = xmlCodec{}

// XMLAttribute is the XML codec for attribute values; it shares the XML
// grammar and differs only in the immune set its callers pass.
var XMLAttribute Codec = xmlAttributeCodec{}

var xmlPredefined = map[rune]string{
	'&':  "amp",
	'<':  "lt",
	'>':  "gt",
	'"':  "quot",
	'\'': "apos",
}

var xmlEntityToRune = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"quot": '"',
	"apos": '\'',
}

type xmlCodec struct{}

func (xmlCodec) Name() string { return "XMLCodec" }

func (xmlCodec) EncodeCharacter(immune []rune, r rune) string {
	return xmlEncodeCharacter(immune, r)
}

func (xmlCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	return xmlDecodeCharacter(ps)
}

type xmlAttributeCodec struct{}

func (xmlAttributeCodec) Name() string { return "XMLAttributeCodec" }

func (xmlAttributeCodec) EncodeCharacter(immune []rune, r rune) string {
	return xmlEncodeCharacter(immune, r)
}

func (xmlAttributeCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	return xmlDecodeCharacter(ps)
}

func xmlEncodeCharacter(immune []rune, r rune) string {
	if isAlphanumeric(r) || containsRune(immune, r) {
		return string(r)
	}
	if name, ok := xmlPredefined[r]; ok {
		return "&" + name + ";"
	}
	return "&#x" + strconv.FormatInt(int64(r), 16) + ";"
}

func xmlDecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '&' {
		ps.Reset()
		return 0, false
	}
	if ps.PeekIs('#') {
		ps.Next()
		r, ok := decodeXMLNumericEntity(ps)
		if !ok {
			ps.Reset()
			return 0, false
		}
		return r, true
	}
	for n := 4; n >= 2; n-- {
		rest := ps.Remainder()
		if len(rest) < n+1 {
			continue
		}
		if rest[n] != ';' {
			continue
		}
		if r, ok := xmlEntityToRune[rest[:n]]; ok {
			ps.advance(n + 1)
			return r, true
		}
	}
	ps.Reset()
	return 0, false
}

// decodeXMLNumericEntity parses the digits of a numeric character
// reference, the cursor being just past "&#". The terminating semicolon is
// mandatory in XML.
func decodeXMLNumericEntity(ps *PushbackString) (rune, bool) {
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
	if digits == 0 || !ps.PeekIs(';') {
		return 0, false
	}
	ps.Next()
	if value > utf8.MaxRune || utf16.IsSurrogate(rune(value)) {
		return utf8.RuneError, true
	}
	return rune(value), true
}
