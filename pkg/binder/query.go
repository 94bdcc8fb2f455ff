package binder

import "net/http"

// Query binds URL query parameters using `query:"name"` tags.
//
// Example:
//
//	type MaintenanceRequest struct {
//		Check string `query:"check"`
//		Limit int    `query:"limit"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
