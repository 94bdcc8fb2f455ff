package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/therapist-admin/pkg/validator"
)

// JSONResponse is the envelope of every /api response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the error part of the envelope. Details lists validation
// messages per field.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption adjusts a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(j *jsonResponse) { j.status = status }
}

// WithJSONMeta sets the meta object, e.g. the check name and result count of a scan.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(j *jsonResponse) { j.body.Meta = meta }
}

// JSON wraps v in the envelope with status 200. Passing an error is the same
// as calling JSONError.
//
//	return handler.JSON(findings, handler.WithJSONMeta(map[string]any{"count": len(findings)}))
func JSON(v any, opts ...JSONOption) Response {
	switch v := v.(type) {
	case JSONResponse:
		return build(&jsonResponse{status: http.StatusOK, body: v}, opts)
	case *ErrorDetail, error:
		return JSONError(v, opts...)
	default:
		return build(&jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}, opts)
	}
}

// JSONError renders err as the envelope's error. HTTPError sets the status and
// code, validation errors answer 422 with per-field details, anything else
// is a 500.
func JSONError(err any, opts ...JSONOption) Response {
	j := &jsonResponse{status: http.StatusInternalServerError}
	switch e := err.(type) {
	case *ErrorDetail:
		j.body.Error = e
	case error:
		j.status, j.body.Error = errorDetail(e)
	}
	return build(j, opts)
}

func build(j *jsonResponse, opts []JSONOption) Response {
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func errorDetail(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		d := &ErrorDetail{Code: "validation_error", Message: err.Error()}
		if len(verrs) > 0 {
			d.Details = make(map[string][]string, len(verrs))
			for _, e := range verrs {
				d.Details[e.Field] = append(d.Details[e.Field], e.Message)
			}
		}
		return http.StatusUnprocessableEntity, d
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}
	return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: err.Error()}
}
