package encoder

import "github.com/dmitrymomot/encodekit/pkg/codec"

// EncodeForSQL escapes input using a caller-supplied codec for direct
// interpolation into SQL.
//
// Deprecated: character escaping is a weak defense for SQL; use
// parameterized queries. The method is disabled unless the Encoder was
// built with WithLegacyEncoders.
func (e *Encoder) EncodeForSQL(c codec.Codec, input string) (string, error) {
	return e.legacyEncode(c, immuneSQL, input)
}

// EncodeForOS escapes input using a caller-supplied shell codec
// (codec.Unix or codec.Windows) for use in a command line.
//
// Deprecated: pass arguments as a vector to the exec API instead of
// escaping a command string. The method is disabled unless the Encoder was
// built with WithLegacyEncoders.
func (e *Encoder) EncodeForOS(c codec.Codec, input string) (string, error) {
	return e.legacyEncode(c, immuneOS, input)
}

func (e *Encoder) legacyEncode(c codec.Codec, immune []rune, input string) (string, error) {
	if !e.legacyEncoders {
		return "", ErrNotConfigured
	}
	if c == nil {
		return "", ErrNilCodec
	}
	return codec.Encode(c, immune, input), nil
}
