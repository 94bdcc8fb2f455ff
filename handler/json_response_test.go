package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/therapist-admin/handler"
	"github.com/dmitrymomot/therapist-admin/pkg/validator"
)

func renderJSON(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, handler.JSONResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest("GET", "/api/summary", nil)))
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSON(map[string]int{"zip": 2}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"zip": float64(2)}, body.Data)
		assert.Nil(t, body.Error)
	})

	t.Run("status and meta options", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSON([]string{"a"},
			handler.WithJSONStatus(http.StatusAccepted),
			handler.WithJSONMeta(map[string]any{"limit": 100}),
		))
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, float64(100), body.Meta["limit"])
	})

	t.Run("error value", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSON(errors.New("boom")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "internal_error", body.Error.Code)
		assert.Equal(t, "boom", body.Error.Message)
	})

	t.Run("empty data is omitted", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSON(nil).Render(w, httptest.NewRequest("GET", "/", nil)))
		assert.JSONEq(t, `{}`, w.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSONError(fmt.Errorf("check: %w", handler.ErrNotFound)))
		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "not_found", body.Error.Code)
		assert.Equal(t, "Not Found", body.Error.Message)
	})

	t.Run("validation errors grouped by field", func(t *testing.T) {
		t.Parallel()
		verrs := validator.ValidationErrors{
			{Field: "limit", Message: "must be positive"},
			{Field: "check", Message: "is required"},
			{Field: "limit", Message: "must be at most 100"},
		}
		w, body := renderJSON(t, handler.JSONError(verrs))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"must be positive", "must be at most 100"}, body.Error.Details["limit"])
		assert.Equal(t, []string{"is required"}, body.Error.Details["check"])
	})

	t.Run("error detail with status override", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSONError(
			&handler.ErrorDetail{Code: "store_unavailable", Message: "try later"},
			handler.WithJSONStatus(http.StatusServiceUnavailable),
		))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "store_unavailable", body.Error.Code)
	})
}
