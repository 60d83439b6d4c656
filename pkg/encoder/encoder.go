package encoder

import (
	"github.com/dmitrymomot/encodekit/pkg/codec"
	"github.com/dmitrymomot/encodekit/pkg/config"
	"github.com/dmitrymomot/encodekit/pkg/secevent"
)

// Config is the environment-driven configuration surface. It is read once
// at construction; the resulting Encoder is immutable. The flags are phrased
// as opt-ins so the zero value is the restrictive default: a hand-built
// Config{} behaves exactly like New() with no options.
type Config struct {
	Codecs                []string `env:"ENCODER_CODECS" envSeparator:"," envDefault:"HTMLEntityCodec,PercentCodec,JavaScriptCodec"`
	AllowMultipleEncoding bool     `env:"ENCODER_ALLOW_MULTIPLE_ENCODING" envDefault:"false"`
	AllowMixedEncoding    bool     `env:"ENCODER_ALLOW_MIXED_ENCODING" envDefault:"false"`
	LegacyEncoders        bool     `env:"ENCODER_LEGACY_ENCODERS" envDefault:"false"`
}

// Encoder performs canonicalization and context-specific output encoding.
// All state is fixed at construction; methods are safe for concurrent use.
type Encoder struct {
	codecs           []codec.Codec
	restrictMultiple bool
	restrictMixed    bool
	legacyEncoders   bool
	sink             secevent.Sink
}

// New builds an Encoder. Without options it canonicalizes against
// {HTMLEntityCodec, PercentCodec, JavaScriptCodec} with both encoding
// restrictions on and events discarded.
func New(opts ...Option) *Encoder {
	e := &Encoder{
		codecs:           []codec.Codec{codec.HTMLEntity, codec.Percent, codec.JavaScript},
		restrictMultiple: true,
		restrictMixed:    true,
		sink:             secevent.NopSink{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromConfig builds an Encoder from an explicit Config. Options are
// applied after the config and may override it.
func NewFromConfig(cfg Config, opts ...Option) (*Encoder, error) {
	list, err := codec.List(cfg.Codecs...)
	if err != nil {
		return nil, err
	}
	combined := make([]Option, 0, len(opts)+4)
	combined = append(combined,
		WithCodecs(list...),
		WithRestrictMultiple(!cfg.AllowMultipleEncoding),
		WithRestrictMixed(!cfg.AllowMixedEncoding),
	)
	if cfg.LegacyEncoders {
		combined = append(combined, WithLegacyEncoders())
	}
	combined = append(combined, opts...)
	return New(combined...), nil
}

// NewFromEnv builds an Encoder from environment variables (see Config).
func NewFromEnv(opts ...Option) (*Encoder, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// Immune sets per output context: characters left unescaped on top of the
// ASCII alphanumerics each codec already passes through.
var (
	immuneHTML          = []rune{',', '.', '-', '_', ' '}
	immuneHTMLAttribute = []rune{',', '.', '-', '_'}
	immuneCSS           = []rune{}
	immuneJavaScript    = []rune{',', '.', '_'}
	immuneVBScript      = []rune{',', '.', '_'}
	immuneXML           = []rune{',', '.', '-', '_', ' '}
	immuneXMLAttribute  = []rune{',', '.', '-', '_'}
	immuneXPath         = []rune{',', '.', '-', '_', ' '}
	immuneURL           = []rune{'-', '.', '_', '~'}
	immuneSQL           = []rune{' '}
	immuneOS            = []rune{'-'}
)

// EncodeForHTML escapes input for use in an HTML element body. It never
// decodes; DecodeForHTML is the explicit inverse.
func (e *Encoder) EncodeForHTML(input string) string {
	return codec.Encode(codec.HTMLEntity, immuneHTML, input)
}

// EncodeForHTMLAttribute escapes input for use inside a quoted HTML
// attribute value.
func (e *Encoder) EncodeForHTMLAttribute(input string) string {
	return codec.Encode(codec.HTMLEntity, immuneHTMLAttribute, input)
}

// DecodeForHTML decodes HTML entities in input, the inverse of
// EncodeForHTML.
func (e *Encoder) DecodeForHTML(input string) string {
	out, _ := codec.Decode(codec.HTMLEntity, input)
	return out
}

// EncodeForCSS escapes input for use inside a CSS style value.
func (e *Encoder) EncodeForCSS(input string) string {
	return codec.Encode(codec.CSS, immuneCSS, input)
}

// EncodeForJavaScript escapes input for use inside a quoted JavaScript
// string literal, including DOM event handler attributes.
func (e *Encoder) EncodeForJavaScript(input string) string {
	return codec.Encode(codec.JavaScript, immuneJavaScript, input)
}

// EncodeForVBScript escapes input for use inside a VBScript expression.
func (e *Encoder) EncodeForVBScript(input string) string {
	return codec.Encode(codec.VBScript, immuneVBScript, input)
}

// EncodeForXML escapes input for use in XML element content.
func (e *Encoder) EncodeForXML(input string) string {
	return codec.Encode(codec.XML, immuneXML, input)
}

// EncodeForXMLAttribute escapes input for use in a quoted XML attribute
// value.
func (e *Encoder) EncodeForXMLAttribute(input string) string {
	return codec.Encode(codec.XMLAttribute, immuneXMLAttribute, input)
}

// EncodeForXPath escapes input for interpolation into an XPath expression.
// This is character-level escaping only; it does not validate XPath
// grammar, and parameterized XPath APIs remain the stronger defense.
func (e *Encoder) EncodeForXPath(input string) string {
	return codec.Encode(codec.XPath, immuneXPath, input)
}

// EncodeForJSON escapes input for use inside a quoted JSON string per
// RFC 8259; quotes are not added.
func (e *Encoder) EncodeForJSON(input string) string {
	return codec.Encode(codec.JSON, nil, input)
}

// DecodeFromJSON decodes JSON string escapes in input, the inverse of
// EncodeForJSON.
func (e *Encoder) DecodeFromJSON(input string) string {
	out, _ := codec.Decode(codec.JSON, input)
	return out
}

// EncodeForLDAP escapes input for use inside an RFC 4515 search filter.
// Pass encodeWildcards=true unless the caller intends the input to keep
// its '*' wildcards.
func (e *Encoder) EncodeForLDAP(input string, encodeWildcards bool) string {
	immune := []rune(nil)
	if !encodeWildcards {
		immune = []rune{'*'}
	}
	return codec.Encode(codec.LDAPFilter, immune, input)
}

// EncodeForDN escapes input for use as an RFC 4514 distinguished name
// attribute value. A leading space or '#' and a trailing space are escaped
// even though they are otherwise allowed mid-string.
func (e *Encoder) EncodeForDN(input string) string {
	runes := []rune(input)
	var b []byte
	for i, r := range runes {
		boundary := (i == 0 && (r == ' ' || r == '#')) ||
			(i == len(runes)-1 && r == ' ')
		if boundary {
			b = append(b, codec.LDAPHexEscape(r)...)
			continue
		}
		b = append(b, codec.LDAPDN.EncodeCharacter(nil, r)...)
	}
	return string(b)
}
