// Package requestid tags every request with a correlation id.
//
// Middleware stores the id in the request context, where the error pages,
// toasts and log records pick it up:
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
