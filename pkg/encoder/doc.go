// Package encoder provides context-aware output encoding and input
// canonicalization for untrusted text.
//
// Canonicalization reduces repeated or obscured encodings to a single
// canonical form before validation, so downstream checks cannot be bypassed
// with double- or mixed-encoding tricks such as %2526 or %26lt;. The
// iterative decode loop runs the configured codec list against the input
// until no codec matches, detecting both multiple encoding (one scheme
// applied twice) and mixed encoding (different schemes nested), and either
// rejects the input or reports a tolerated warning depending on the
// configured policy.
//
// The EncodeForX methods are the one-way counterpart: each selects the
// single codec bound to its target interpreter (HTML body, HTML attribute,
// JavaScript literal, CSS value, URL, JSON string, LDAP filter or DN, XML,
// XPath, VBScript) and escapes everything outside that context's immune
// set. Encoding is a pure one-pass transform that never decodes and never
// fails.
//
//	enc := encoder.New(encoder.WithSink(secevent.NewLogSink(log)))
//
//	clean, err := enc.Canonicalize(r.FormValue("q"))
//	if err != nil {
//		// input carried disallowed multiple/mixed encoding
//	}
//	// ... validate clean, then encode for the output context:
//	fmt.Fprintf(w, "<td>%s</td>", enc.EncodeForHTML(clean))
//
// Encoder values are immutable after construction and safe for concurrent
// use from any number of goroutines.
package encoder
