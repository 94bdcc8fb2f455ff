package binder

import (
	"fmt"
	"net/http"
)

// Path binds path parameters using `path:"name"` tags and the router's extractor.
//
// Example with chi:
//
//	type CheckRequest struct {
//		Check string `path:"check"`
//	}
//
//	r.Get("/api/checks/{check}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, CheckRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}
		return bindFunc(v, "path", func(key string) []string {
			if value := extractor(r, key); value != "" {
				return []string{value}
			}
			return nil
		}, ErrInvalidPath)
	}
}
