package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Codecs records the codec names involved in a canonicalization decision
// under the key "codecs".
func Codecs(names []string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("codecs", names)
}

// Condition records the detected encoding anomaly under the key
// "condition".
func Condition(condition string) slog.Attr {
	if condition == "" {
		return slog.Attr{}
	}
	return slog.String("condition", condition)
}
