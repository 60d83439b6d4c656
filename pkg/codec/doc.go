// Package codec implements stateless character codecs for the escaping
// schemes of common downstream interpreters: HTML entities, percent (URL)
// encoding, JavaScript and CSS string escapes, LDAP search filters and
// distinguished names, XML bodies and attributes, XPath expressions, JSON
// strings, VBScript, and Unix/Windows shell quoting.
//
// Every codec is a bidirectional transformer between a single logical
// character and its escaped representation in one target language. Encoding
// is total: EncodeCharacter is defined for every rune, including control
// characters, and never fails. Decoding is cursor-based: DecodeCharacter
// parses exactly one escape sequence from a PushbackString and reports
// no-match (leaving the cursor untouched) on anything that is not a
// syntactically complete escape for its scheme. Malformed or truncated
// escapes are therefore passed through verbatim by the full-string helpers
// rather than raising errors, which is what the canonicalizer in
// pkg/encoder relies on when it probes the same position with several
// codecs.
//
// All codec values are immutable singletons and safe for concurrent use:
//
//	out := codec.Encode(codec.HTMLEntity, []rune{',', '.'}, userInput)
//
// Base64 is the one scheme that is not character-oriented; it is exposed as
// the whole-buffer EncodeBase64/DecodeBase64 pair instead of a Codec.
package codec
