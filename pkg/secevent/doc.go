// Package secevent defines the security event model and sink capability the
// canonicalizer reports through. Detected multiple or mixed encoding is
// always reported, whether or not it is fatal to the call, so operators can
// observe attack attempts that were tolerated.
//
// The sink is injected rather than ambient: tests assert on exactly which
// events fired using MemorySink, while production wiring typically uses the
// slog-backed LogSink. Sinks are fire-and-forget from the caller's point of
// view; a slow, failing or panicking sink never fails the encoding
// operation that triggered the event.
package secevent
