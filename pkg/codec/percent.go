package codec

import (
	"strings"
	"unicode/utf8"
)

// Percent encodes and decodes URL percent-encoding: %HH per UTF-8 byte on
// encode, and on decode consecutive %HH triples are assembled into a UTF-8
// byte stream so multi-byte characters survive the round trip.
var Percent Codec = percentCodec{}

type percentCodec struct{}

func (percentCodec) Name() string { return "PercentCodec" }

func (percentCodec) EncodeCharacter(immune []rune, r rune) string {
	if isAlphanumeric(r) || containsRune(immune, r) {
		return string(r)
	}
	var b strings.Builder
	for _, by := range []byte(string(r)) {
		b.WriteByte('%')
		b.WriteString(hexByteUpper(by))
	}
	return b.String()
}

func (percentCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '%' {
		ps.Reset()
		return 0, false
	}
	lead, ok := ps.nextHexByte()
	if !ok {
		ps.Reset()
		return 0, false
	}
	if lead < 0x80 {
		return rune(lead), true
	}

	// Multi-byte UTF-8: the expected continuation count comes from the
	// lead byte. A bare continuation byte or an over-long lead cannot
	// start a valid sequence and degrades to U+FFFD.
	need := utf8TrailCount(lead)
	if need == 0 {
		return utf8.RuneError, true
	}
	buf := []byte{lead}
	for i := 0; i < need; i++ {
		pos := ps.position()
		if ps.Next() != '%' {
			ps.restore(pos)
			return utf8.RuneError, true
		}
		cont, ok := ps.nextHexByte()
		if !ok || cont&0xc0 != 0x80 {
			ps.restore(pos)
			return utf8.RuneError, true
		}
		buf = append(buf, cont)
	}
	r, _ := utf8.DecodeRune(buf)
	return r, true
}

// utf8TrailCount returns the number of continuation bytes implied by a UTF-8
// lead byte, or 0 when the byte cannot lead a multi-byte sequence.
func utf8TrailCount(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 1
	case b&0xf0 == 0xe0:
		return 2
	case b&0xf8 == 0xf0:
		return 3
	}
	return 0
}
