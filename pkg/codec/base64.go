package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBase64 indicates base64 input with a bad length or characters
// outside the RFC 4648 alphabet.
var ErrInvalidBase64 = errors.New("invalid base64 input")

// base64WrapAt is the output column at which a line break is inserted when
// wrapping is requested.
const base64WrapAt = 64

// EncodeBase64 encodes data per RFC 4648, optionally inserting a line break
// every 64 output characters.
func EncodeBase64(data []byte, wrap bool) string {
	s := base64.StdEncoding.EncodeToString(data)
	if !wrap || len(s) <= base64WrapAt {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/base64WrapAt)
	for len(s) > base64WrapAt {
		b.WriteString(s[:base64WrapAt])
		b.WriteByte('\n')
		s = s[base64WrapAt:]
	}
	b.WriteString(s)
	return b.String()
}

// DecodeBase64 decodes RFC 4648 base64 text. Whitespace is stripped first;
// after that the input must be a multiple of four characters drawn from the
// base64 alphabet plus '=' padding, or an error naming the offending input
// is returned.
func DecodeBase64(input string) ([]byte, error) {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, input)

	if len(stripped)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 4", ErrInvalidBase64, len(stripped))
	}
	for i := 0; i < len(stripped); i++ {
		if !isBase64Char(stripped[i]) {
			return nil, fmt.Errorf("%w: character %q at offset %d", ErrInvalidBase64, stripped[i], i)
		}
	}
	decoded, err := base64.StdEncoding.DecodeString(stripped)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return decoded, nil
}

func isBase64Char(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9') || b == '+' || b == '/' || b == '='
}
