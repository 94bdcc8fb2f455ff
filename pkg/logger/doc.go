// Package logger builds the dashboard's slog loggers and holds the attribute
// constructors used across the codebase.
//
// New returns a *slog.Logger configured by options. WithEnvironment picks the
// format and level for an environment; WithContextExtractors adds attributes
// taken from the context on every record, such as the request id:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "scan complete",
//		logger.Component("quality"),
//		logger.Check("zip"),
//		logger.Count(2),
//	)
package logger
