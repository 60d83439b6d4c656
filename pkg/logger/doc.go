// Package logger builds configured log/slog loggers for the toolkit.
//
// It exposes a small factory with functional options for level, format and
// output, plus attribute helpers used when wiring the security event sink:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithAttr(slog.String("service", "gateway")),
//	)
//	sink := secevent.NewLogSink(log)
package logger
