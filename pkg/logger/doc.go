// Package logger builds log/slog loggers with environment presets and
// context attribute extraction.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "contactd"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "submission settled", logger.Outcome("delivered"))
//
// Attribute helpers keep key names consistent across packages.
package logger
