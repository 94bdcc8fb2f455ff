package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/therapist-admin/handler"
	"github.com/dmitrymomot/therapist-admin/pkg/binder"
)

type fixRequest struct {
	Check string `query:"check"`
	ID    string `form:"id"`
	Value string `form:"value"`
}

func TestWrap_Binders(t *testing.T) {
	t.Parallel()

	var got fixRequest
	h := handler.Wrap(func(ctx handler.Context, req fixRequest) handler.Response {
		got = req
		return handler.JSON(req.ID)
	}, handler.WithBinders[handler.Context, fixRequest](binder.Query(), binder.Form()))

	req := httptest.NewRequest("POST", "/maintenance/fix?check=zip", strings.NewReader("id=cmjd100001a&value=8000"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fixRequest{Check: "zip", ID: "cmjd100001a", Value: "8000"}, got)
}

func TestWrap_SkipsInapplicableBinder(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Wrap(func(ctx handler.Context, req fixRequest) handler.Response {
		called = true
		assert.Equal(t, "canton", req.Check)
		return handler.JSON(nil)
	}, handler.WithBinders[handler.Context, fixRequest](binder.Form(), binder.Query()))

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/maintenance?check=canton", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWrap_Errors(t *testing.T) {
	t.Parallel()

	var handled error
	capture := func(ctx handler.Context, err error) {
		handled = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}

	t.Run("nil response", func(t *testing.T) {
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			return nil
		}, handler.WithErrorHandler[handler.Context, struct{}](capture))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest("GET", "/", nil))
		assert.ErrorIs(t, handled, handler.ErrNilResponse)
		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("error response", func(t *testing.T) {
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			return handler.Error(handler.NewHTTPError(http.StatusInternalServerError, "Failed to update"))
		}, handler.WithErrorHandler[handler.Context, struct{}](capture))

		h(httptest.NewRecorder(), httptest.NewRequest("POST", "/", nil))
		var httpErr handler.HTTPError
		require.ErrorAs(t, handled, &httpErr)
		assert.Equal(t, "Failed to update", httpErr.Key)
	})

	t.Run("nil error becomes internal server error", func(t *testing.T) {
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			return handler.Error(nil)
		}, handler.WithErrorHandler[handler.Context, struct{}](capture))

		h(httptest.NewRecorder(), httptest.NewRequest("POST", "/", nil))
		assert.ErrorIs(t, handled, handler.ErrInternalServerError)
	})

	t.Run("binder error", func(t *testing.T) {
		type limitRequest struct {
			Limit int `query:"limit"`
		}
		h := handler.Wrap(func(ctx handler.Context, req limitRequest) handler.Response {
			t.Fatal("handler must not run")
			return nil
		}, handler.WithBinders[handler.Context, limitRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, limitRequest](capture))

		h(httptest.NewRecorder(), httptest.NewRequest("GET", "/?limit=ten", nil))
		assert.ErrorIs(t, handled, binder.ErrInvalidQuery)
	})
}

func TestWrap_DefaultErrorHandler(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		return handler.Error(errors.New("boom"))
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "boom")
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		order = append(order, "handler")
		return handler.JSON(nil)
	}, handler.WithDecorators(mark("outer"), mark("inner")))

	h(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

type operatorContext struct {
	handler.Context
	operator string
}

func TestWrap_ContextFactory(t *testing.T) {
	t.Parallel()

	newOperatorContext := func(w http.ResponseWriter, r *http.Request) operatorContext {
		return operatorContext{Context: handler.NewContext(w, r), operator: r.Header.Get("X-Operator")}
	}

	var seen string
	h := handler.Wrap(func(ctx operatorContext, _ struct{}) handler.Response {
		seen = ctx.operator
		return handler.JSON(nil)
	}, handler.WithContextFactory[operatorContext, struct{}](newOperatorContext))

	req := httptest.NewRequest("GET", "/data", nil)
	req.Header.Set("X-Operator", "ops@example.ch")
	h(httptest.NewRecorder(), req)
	assert.Equal(t, "ops@example.ch", seen)

	missing := handler.Wrap(func(ctx operatorContext, _ struct{}) handler.Response {
		return handler.JSON(nil)
	})
	assert.Panics(t, func() {
		missing(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	})
}
