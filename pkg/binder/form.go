package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Form binds application/x-www-form-urlencoded bodies using `form:"name"` tags.
//
// Requests without a body content type (GET, HEAD, plain links) are reported as
// ErrBinderNotApplicable so Form can be stacked with Query on shared handlers.
// Multipart bodies are rejected: the dashboard never uploads files.
//
// Example:
//
//	type FixRequest struct {
//		ID    string `form:"id"`
//		Field string `form:"field"`
//		Value string `form:"value"`
//	}
//
//	r.Post("/fix", handler.Wrap(fix,
//		handler.WithBinders[handler.Context, FixRequest](binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrBinderNotApplicable
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type", ErrInvalidForm)
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		// PostForm excludes query parameters; Query() binds those separately.
		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}
