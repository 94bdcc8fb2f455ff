package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/therapist-admin/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
//
// Example:
//
//	func (s *Service) apiSummary(ctx handler.Context, _ SummaryRequest) handler.Response {
//		sum, err := s.scanner.Summary(ctx)
//		if err != nil {
//			return handler.JSONError(handler.ErrInternalServerError)
//		}
//		return handler.JSON(sum)
//	}
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response writes status, headers and body. A returned error is passed to the
// route's ErrorHandler, so Render should fail before writing anything.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from r. Binders return binder.ErrBinderNotApplicable when the
// request carries nothing for them.
type Bind func(r *http.Request, v any) error

// ErrorHandler renders binding, handler and rendering failures.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to WithDecorators
// is the outermost.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*route[C, R])

// route is a typed handler with its binding and error handling.
type route[C Context, R any] struct {
	handle     HandlerFunc[C, R]
	binders    []Bind
	decorators []Decorator[C, R]
	onError    ErrorHandler[C]
	newContext func(http.ResponseWriter, *http.Request) C
}

// WithBinders appends binders. They run in order, each one reading only its
// own struct tags.
//
// Example:
//
//	r.Post("/maintenance/fix", handler.Wrap(s.fix,
//		handler.WithBinders[handler.Context, FixRequest](
//			binder.Query(),
//			binder.Form(),
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		rt.binders = append(rt.binders, binders...)
	}
}

// WithErrorHandler replaces the plain-text default error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if h != nil {
			rt.onError = h
		}
	}
}

// WithContextFactory builds a custom C for each request.
// It is required whenever C is not Context itself.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if f != nil {
			rt.newContext = f
		}
	}
}

// WithDecorators appends decorators around the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		rt.decorators = append(rt.decorators, decorators...)
	}
}

// Wrap turns a typed handler into an http.HandlerFunc.
//
// Without WithErrorHandler, failures are answered in plain text: an HTTPError
// with its status and key, anything else with 500.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	rt := &route[C, R]{
		onError:    plainTextError[C],
		newContext: defaultContext[C],
	}
	for _, opt := range opts {
		opt(rt)
	}

	rt.handle = h
	for i := len(rt.decorators) - 1; i >= 0; i-- {
		rt.handle = rt.decorators[i](rt.handle)
	}

	return rt.serve
}

func (rt *route[C, R]) serve(w http.ResponseWriter, r *http.Request) {
	ctx := rt.newContext(w, r)

	req, err := rt.bind(r)
	if err != nil {
		rt.onError(ctx, err)
		return
	}

	resp := rt.handle(ctx, req)
	if resp == nil {
		rt.onError(ctx, ErrNilResponse)
		return
	}
	if err := resp.Render(w, r); err != nil {
		rt.onError(ctx, err)
	}
}

func (rt *route[C, R]) bind(r *http.Request) (R, error) {
	var req R
	for _, b := range rt.binders {
		err := b(r, &req)
		if err == nil || errors.Is(err, binder.ErrBinderNotApplicable) {
			continue
		}
		return req, err
	}
	return req, nil
}

func defaultContext[C Context](w http.ResponseWriter, r *http.Request) C {
	c, ok := NewContext(w, r).(C)
	if !ok {
		var zero C
		panic(fmt.Sprintf("handler: %T needs WithContextFactory", zero))
	}
	return c
}

func plainTextError[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}
