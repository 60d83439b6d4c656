package encoder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIntrusionDetected indicates canonicalization found disallowed
	// multiple or mixed encoding under the active policy.
	ErrIntrusionDetected = errors.New("intrusion detected")

	// ErrEncoding indicates input could not be interpreted under the
	// target scheme.
	ErrEncoding = errors.New("encoding failed")

	// ErrNotConfigured is returned by the deprecated SQL/OS encoders when
	// the legacy-encoder opt-in is not enabled.
	ErrNotConfigured = errors.New("legacy encoders not configured")

	// ErrNilCodec is returned when a caller-supplied codec is nil.
	ErrNilCodec = errors.New("nil codec")

	// ErrInvalidURI is returned when a URI cannot be parsed into
	// components for canonicalization.
	ErrInvalidURI = errors.New("invalid uri")

	errInvalidUTF8 = errors.New("input is not valid UTF-8")
)

// IntrusionError reports which canonicalization condition triggered and the
// codecs involved, so callers can log enough context to distinguish an
// attack from a legitimate encoding mismatch.
type IntrusionError struct {
	Multiple bool     // same codec decoded on more than one pass
	Mixed    bool     // more than one distinct codec decoded
	Codecs   []string // codecs that fired, in first-fired order
}

func (e *IntrusionError) Error() string {
	conds := make([]string, 0, 2)
	if e.Multiple {
		conds = append(conds, "multiple encoding")
	}
	if e.Mixed {
		conds = append(conds, "mixed encoding")
	}
	return fmt.Sprintf("%s: %s (%s)",
		ErrIntrusionDetected.Error(),
		strings.Join(conds, " and "),
		strings.Join(e.Codecs, ", "))
}

func (e *IntrusionError) Unwrap() error {
	return ErrIntrusionDetected
}

// EncodingError reports a decode failure under a named scheme.
type EncodingError struct {
	Scheme string // scheme or codec that rejected the input
	Cause  error
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrEncoding.Error(), e.Scheme, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrEncoding.Error(), e.Scheme)
}

func (e *EncodingError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrEncoding, e.Cause}
	}
	return []error{ErrEncoding}
}
