// Package logger builds *slog.Logger values for toolsite.
//
// New takes functional options for level, format (text or json), output,
// static attributes and context extractors. Context extractors run on every
// record and copy request-scoped values such as the request ID or page locale
// into the log line, so handlers only need to call the *Context logging methods.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "toolsite"),
//		logger.WithContextExtractors(
//			logger.StringExtractor("request_id", requestid.FromContext),
//		),
//	)
//	log.InfoContext(ctx, "page rendered", logger.Tool("json-to-csv"), logger.Locale("es"))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
