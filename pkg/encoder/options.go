package encoder

import (
	"github.com/dmitrymomot/encodekit/pkg/codec"
	"github.com/dmitrymomot/encodekit/pkg/secevent"
)

// Option configures an Encoder at construction time.
type Option func(*Encoder)

// WithCodecs replaces the ordered codec list used by canonicalization.
// Order is significant: it determines decode precedence and which codec a
// mixed-encoding detection is attributed to. Empty lists are ignored.
func WithCodecs(codecs ...codec.Codec) Option {
	return func(e *Encoder) {
		if len(codecs) > 0 {
			e.codecs = codecs
		}
	}
}

// WithRestrictMultiple sets whether detecting the same scheme applied more
// than once is fatal to canonicalization.
func WithRestrictMultiple(restrict bool) Option {
	return func(e *Encoder) { e.restrictMultiple = restrict }
}

// WithRestrictMixed sets whether detecting two or more different schemes on
// the same input is fatal to canonicalization.
func WithRestrictMixed(restrict bool) Option {
	return func(e *Encoder) { e.restrictMixed = restrict }
}

// WithSink installs the security event sink. Nil sinks are ignored.
func WithSink(sink secevent.Sink) Option {
	return func(e *Encoder) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithLegacyEncoders enables the deprecated EncodeForSQL and EncodeForOS
// pass-throughs, which are disabled by default. Prefer parameterized
// queries and argument vectors over character escaping for those sinks.
func WithLegacyEncoders() Option {
	return func(e *Encoder) { e.legacyEncoders = true }
}
