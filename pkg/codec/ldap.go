package codec

import (
	"strings"
	"unicode/utf8"
)

// LDAPFilter encodes characters for RFC 4515 search filters and decodes the
// \HH escape form. Characters inside the RFC's printable ranges pass
// through; everything else is hex-escaped byte-wise, with code points at or
// above 0x80 expanded to their UTF-8 bytes first. The forward slash is
// escaped unconditionally for directory-server compatibility.
var LDAPFilter Codec = ldapFilterCodec{}

// LDAPDN encodes characters for RFC 4514 distinguished names using the same
// \HH escape form. The position-dependent rules for a leading space or '#'
// and a trailing space are applied by the caller, since a per-character
// codec cannot see where in the output it is.
var LDAPDN Codec = ldapDNCodec{}

type ldapFilterCodec struct{}

func (ldapFilterCodec) Name() string { return "LDAPFilterCodec" }

func (ldapFilterCodec) EncodeCharacter(immune []rune, r rune) string {
	if containsRune(immune, r) {
		return string(r)
	}
	if r == '/' {
		return LDAPHexEscape(r)
	}
	if (r >= 0x01 && r <= 0x27) || (r >= 0x2b && r <= 0x5b) || (r >= 0x5d && r <= 0x7f) {
		return string(r)
	}
	return LDAPHexEscape(r)
}

func (ldapFilterCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	return ldapDecodeCharacter(ps)
}

type ldapDNCodec struct{}

func (ldapDNCodec) Name() string { return "LDAPDNCodec" }

func (ldapDNCodec) EncodeCharacter(immune []rune, r rune) string {
	if containsRune(immune, r) {
		return string(r)
	}
	if r == '/' {
		return LDAPHexEscape(r)
	}
	if (r >= 0x01 && r <= 0x21) || (r >= 0x23 && r <= 0x2a) ||
		(r >= 0x2d && r <= 0x3a) || r == 0x3d ||
		(r >= 0x3f && r <= 0x5b) || (r >= 0x5d && r <= 0x7f) {
		return string(r)
	}
	return LDAPHexEscape(r)
}

func (ldapDNCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	return ldapDecodeCharacter(ps)
}

// LDAPHexEscape returns the \HH escape form of r. Code points at or above
// 0x80 are expanded to UTF-8 bytes, each escaped separately.
func LDAPHexEscape(r rune) string {
	var b strings.Builder
	for _, by := range []byte(string(r)) {
		b.WriteByte('\\')
		b.WriteString(hexByteLower(by))
	}
	return b.String()
}

// ldapDecodeCharacter parses one \HH escape, assembling continuation bytes
// of a multi-byte UTF-8 sequence from the escapes that follow.
func ldapDecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '\\' {
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
	need := utf8TrailCount(lead)
	if need == 0 {
		return utf8.RuneError, true
	}
	buf := []byte{lead}
	for i := 0; i < need; i++ {
		pos := ps.position()
		if ps.Next() != '\\' {
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
