// Package httpserver runs the dashboard's http.Server with graceful shutdown
// and provides liveness and readiness probe handlers.
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
