package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/therapist-admin/pkg/logger"
	"github.com/dmitrymomot/therapist-admin/pkg/requestid"
	"github.com/dmitrymomot/therapist-admin/pkg/validator"
)

// genericErrorMessage is shown for errors that carry no HTTPError.
const genericErrorMessage = "An error occurred processing your request"

// ErrorPageParams is passed to the full-page error view.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to the toast view.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning" or "info"
	RequestID string
}

// ErrorHandlerConfig holds the views used by NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders regular requests. Without it the error is written as plain text.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders datastar requests. Without it nothing is written.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget is the selector toasts are patched into (default "#toast-container").
	ToastTarget string
	// ToastMode is the patch mode for toasts (default PatchPrepend).
	ToastMode datastar.ElementPatchMode
}

// failure is an error as the operator sees it.
type failure struct {
	status  int
	message string
}

func classify(err error) failure {
	f := failure{status: http.StatusInternalServerError, message: genericErrorMessage}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		f.status, f.message = httpErr.Code, httpErr.Key
	}
	// Field messages are more useful than the HTTP error they are joined with.
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		f.status, f.message = http.StatusUnprocessableEntity, validationMessage(verrs)
	}
	return f
}

func (f failure) clientError() bool {
	return f.status >= http.StatusBadRequest && f.status < http.StatusInternalServerError
}

func (f failure) toastType() string {
	switch {
	case f.clientError():
		return "warning"
	case f.status >= http.StatusInternalServerError:
		return "error"
	default:
		return "info"
	}
}

func (f failure) logLevel() slog.Level {
	if f.clientError() {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func validationMessage(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return "Validation failed"
	}
	parts := make([]string, len(verrs))
	for i, e := range verrs {
		parts[i] = e.Field + ": " + e.Message
	}
	return strings.Join(parts, "; ")
}

type errorRenderer struct {
	cfg ErrorHandlerConfig
	log *slog.Logger
}

// NewErrorHandler returns the error handler shared by all dashboard routes.
// Regular requests get the error page with the failure's status code;
// datastar requests get a toast patched into cfg.ToastTarget.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}

	er := &errorRenderer{cfg: cfg, log: log.With(logger.Component("error_handler"))}
	return er.handle
}

func (er *errorRenderer) handle(ctx Context, err error) {
	r := ctx.Request()
	f := classify(err)
	reqID := requestid.FromContext(r.Context())

	er.log.LogAttrs(r.Context(), f.logLevel(), "request error",
		logger.RequestID(reqID),
		logger.Error(err),
		slog.Int("status_code", f.status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
	)

	if IsDataStar(r) {
		er.toast(ctx, f, reqID)
		return
	}
	er.page(ctx, f, reqID)
}

// toast never sets a status code: the SSE stream is already 200.
func (er *errorRenderer) toast(ctx Context, f failure, reqID string) {
	if er.cfg.ErrorToast == nil {
		er.log.Warn("no error toast view configured", logger.RequestID(reqID))
		return
	}

	resp := Templ(
		er.cfg.ErrorToast(ErrorToastParams{Message: f.message, Type: f.toastType(), RequestID: reqID}),
		WithTarget(er.cfg.ToastTarget),
		WithPatchMode(er.cfg.ToastMode),
	)
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		er.log.Error("failed to render error toast",
			logger.RequestID(reqID),
			logger.Error(err),
			logger.Event("render_error_toast"),
		)
	}
}

func (er *errorRenderer) page(ctx Context, f failure, reqID string) {
	w := ctx.ResponseWriter()
	if er.cfg.ErrorPage == nil {
		http.Error(w, f.message, f.status)
		return
	}

	resp := TemplStatus(f.status, er.cfg.ErrorPage(ErrorPageParams{
		Error:      f.message,
		StatusCode: f.status,
		RequestID:  reqID,
		RetryURL:   ctx.Request().URL.Path,
	}))
	if err := resp.Render(w, ctx.Request()); err != nil {
		er.log.Error("failed to render error page",
			logger.RequestID(reqID),
			logger.Error(err),
			logger.Event("render_error_page"),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
