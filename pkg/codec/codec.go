package codec

import "strings"

// Codec is a stateless encoder/decoder for one escaping scheme. All
// implementations are immutable and safe for concurrent use.
type Codec interface {
	// Name returns the stable identifier of the codec, e.g. "PercentCodec".
	Name() string

	// EncodeCharacter returns the escaped representation of r in the
	// codec's target language, or r unchanged when it is immune (safe to
	// emit without escaping). It is total: every rune, including control
	// characters and runes outside Basic Latin, produces a result.
	EncodeCharacter(immune []rune, r rune) string

	// DecodeCharacter attempts to parse exactly one escape sequence at the
	// cursor position. On success it returns the decoded rune with the
	// cursor advanced past the escape. On no-match it returns false and
	// the cursor is left exactly where it was; malformed input must never
	// produce an error, only a no-match.
	DecodeCharacter(ps *PushbackString) (rune, bool)
}

// Encode runs a single allow-list encoding pass over input: each rune is
// replaced by its EncodeCharacter result. One pass, no decoding, total.
func Encode(c Codec, immune []rune, input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		b.WriteString(c.EncodeCharacter(immune, r))
	}
	return b.String()
}

// Decode runs a single full-string decode pass over input: at each position
// the codec is asked to decode one escape; on a match the escape is replaced
// by the decoded rune and scanning continues just past the replacement, so
// decoded output is never re-scanned within the pass. It returns the result
// and the number of escapes collapsed. Unmatched escape fragments are copied
// through verbatim.
func Decode(c Codec, input string) (string, int) {
	var b strings.Builder
	b.Grow(len(input))
	ps := NewPushbackString(input)
	n := 0
	for ps.HasNext() {
		if r, ok := c.DecodeCharacter(ps); ok {
			b.WriteRune(r)
			n++
			continue
		}
		b.WriteRune(ps.Next())
	}
	return b.String(), n
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func containsRune(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

const hexDigitsUpper = "0123456789ABCDEF"

// hexByteUpper formats b as two uppercase hex digits.
func hexByteUpper(b byte) string {
	return string([]byte{hexDigitsUpper[b>>4], hexDigitsUpper[b&0x0f]})
}

const hexDigitsLower = "0123456789abcdef"

// hexByteLower formats b as two lowercase hex digits.
func hexByteLower(b byte) string {
	return string([]byte{hexDigitsLower[b>>4], hexDigitsLower[b&0x0f]})
}
