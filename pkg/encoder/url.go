package encoder

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/encodekit/pkg/codec"
)

// EncodeForURL percent-encodes input for use in a URL component. Only the
// RFC 3986 unreserved punctuation stays literal. Input that is not valid
// UTF-8 cannot be represented as percent-encoded characters and is
// rejected.
func (e *Encoder) EncodeForURL(input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", &EncodingError{Scheme: "PercentCodec", Cause: errInvalidUTF8}
	}
	return codec.Encode(codec.Percent, immuneURL, input), nil
}

// DecodeFromURL canonicalizes input first, so layered encodings surface
// before any percent-decoding happens, then applies URL form decoding
// ('+' as space). Disallowed multiple or mixed encoding fails the call.
func (e *Encoder) DecodeFromURL(input string) (string, error) {
	canonical, err := e.Canonicalize(input)
	if err != nil {
		return "", &EncodingError{Scheme: "PercentCodec", Cause: err}
	}
	decoded, _ := codec.Decode(codec.Percent, strings.ReplaceAll(canonical, "+", " "))
	return decoded, nil
}

// EncodeForBase64 encodes data per RFC 4648, breaking lines every 64
// characters when wrap is true.
func (e *Encoder) EncodeForBase64(data []byte, wrap bool) string {
	return codec.EncodeBase64(data, wrap)
}

// DecodeFromBase64 decodes RFC 4648 base64 text, failing loudly on bad
// alphabet or padding rather than returning a truncated result.
func (e *Encoder) DecodeFromBase64(input string) ([]byte, error) {
	return codec.DecodeBase64(input)
}
