// Package handler provides typed HTTP handlers for the dashboard.
//
// A HandlerFunc binds the request into a struct and returns a Response.
// Wrap turns it into an http.HandlerFunc:
//
//	type maintenanceRequest struct {
//		Check string `query:"check"`
//	}
//
//	func (s *Service) maintenance(ctx handler.Context, req maintenanceRequest) handler.Response {
//		findings, err := s.scanner.Scan(ctx, req.Check, 0)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.Templ(s.views.Maintenance(params))
//	}
//
//	r.Get("/maintenance", handler.Wrap(s.maintenance,
//		handler.WithBinders[handler.Context, maintenanceRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, maintenanceRequest](errorHandler),
//	))
//
// # Responses
//
//	handler.JSON(data)                  // 200 with {"data": ...}
//	handler.JSONError(err)              // status derived from err
//	handler.Templ(component)            // HTML or a single SSE patch
//	handler.TemplPartial(partial, full) // partial for DataStar, full otherwise
//	handler.TemplMulti(patches...)      // several SSE patches
//	handler.Redirect("/maintenance")    // 303 or DataStar redirect
//	handler.Error(err)                  // defer to the ErrorHandler
//
// # DataStar
//
// Requests that accept text/event-stream, carry the datastar query parameter
// or an application/x-datastar content type are answered with Server-Sent
// Events. Everything else receives plain HTML.
//
// # Errors
//
// Errors returned by binders or by Response.Render reach the ErrorHandler.
// NewErrorHandler renders an error page for regular requests and a toast
// for DataStar requests. HTTPError sets the status code and message;
// validator.ValidationErrors produce 422 with the field messages.
package handler
