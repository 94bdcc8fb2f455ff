package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/therapist-admin/handler"
	"github.com/dmitrymomot/therapist-admin/modules/dashboard"
	"github.com/dmitrymomot/therapist-admin/modules/dashboard/views"
	"github.com/dmitrymomot/therapist-admin/pkg/httpserver"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
	"github.com/dmitrymomot/therapist-admin/svc/quality"
	"github.com/dmitrymomot/therapist-admin/svc/remediation"
)

// brokenStore fails every write.
type brokenStore struct {
	*directory.MemoryStore
}

func (brokenStore) UpdateField(context.Context, string, directory.Field, string) error {
	return errors.New("connection reset")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(t *testing.T, store directory.Store, opts ...remediation.Option) chi.Router {
	t.Helper()

	scanner := quality.NewScanner(store)
	svc := dashboard.NewService(
		dashboard.Config{},
		scanner,
		remediation.NewService(store, opts...),
		store,
		views.Dashboard(),
		handler.NewErrorHandler(quietLogger(), handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		}),
	)

	return dashboard.Router(dashboard.RouterOptions{
		Dashboard: svc,
		Liveness:  httpserver.LivenessHandler(),
	})
}

func sampleStore() *directory.MemoryStore {
	return directory.NewMemoryStore(directory.SampleTherapists()...)
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func fixRequest(form url.Values, datastar bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/maintenance/fix", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if datastar {
		req.Header.Set("Accept", "text/event-stream")
	}
	return req
}

func TestOverview(t *testing.T) {
	t.Parallel()

	r := newRouter(t, sampleStore())
	rec := do(r, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Total Therapists")
	for _, c := range quality.Checks() {
		assert.Contains(t, body, `id="tile-`+c.Name+`"`)
		assert.Contains(t, body, c.Label)
	}
	assert.Contains(t, body, `href="/maintenance?check=zip"`)
	assert.Contains(t, body, "Fix Issues")
}

func TestDataPage(t *testing.T) {
	t.Parallel()

	r := newRouter(t, sampleStore())
	rec := do(r, httptest.NewRequest(http.MethodGet, "/data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Latest 50 therapists")
	assert.Contains(t, body, "Anna Meier")
	assert.Contains(t, body, "Unverified")
	// newest first
	assert.Less(t, strings.Index(body, "Marc Favre"), strings.Index(body, "Anna Meier"))
}

func TestMaintenance(t *testing.T) {
	t.Parallel()

	r := newRouter(t, sampleStore())

	t.Run("defaults to zip", func(t *testing.T) {
		rec := do(r, httptest.NewRequest(http.MethodGet, "/maintenance", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, quality.Describe(quality.CheckZip))
		assert.Contains(t, body, `id="finding-cmjd100003c"`)
		assert.Contains(t, body, `id="finding-cmjd100004d"`)
		assert.Contains(t, body, `<span class="null">NULL</span>`)
		assert.NotContains(t, body, `id="finding-cmjd100006f"`)
	})

	t.Run("unknown check", func(t *testing.T) {
		rec := do(r, httptest.NewRequest(http.MethodGet, "/maintenance?check=fax", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, quality.NoDescription)
		assert.Contains(t, body, "All clear! No issues found for this check.")
	})

	t.Run("datastar patches the section", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/maintenance?check=canton", nil)
		req.Header.Set("Accept", "text/event-stream")
		rec := do(r, req)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#maintenance")
		assert.NotContains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, "cmjd100005e")
	})
}

func TestFix(t *testing.T) {
	t.Parallel()

	t.Run("regular post redirects back", func(t *testing.T) {
		store := sampleStore()
		r := newRouter(t, store)

		rec := do(r, fixRequest(url.Values{
			"id": {"cmjd100003c"}, "field": {"zip"}, "value": {"1204"}, "check": {"zip"},
		}, false))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/maintenance?check=zip", rec.Header().Get("Location"))

		got, err := store.Get(context.Background(), "cmjd100003c")
		require.NoError(t, err)
		assert.Equal(t, "1204", directory.Str(got.Zip))
	})

	t.Run("datastar post patches fix list", func(t *testing.T) {
		r := newRouter(t, sampleStore())

		rec := do(r, fixRequest(url.Values{
			"id": {"cmjd100003c"}, "field": {"zip"}, "value": {"1204"}, "check": {"zip"},
		}, true))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#fix-list")
		assert.NotContains(t, body, "finding-cmjd100003c")
		assert.Contains(t, body, "finding-cmjd100004d")
	})

	t.Run("unchecked write stores bad values", func(t *testing.T) {
		store := sampleStore()
		r := newRouter(t, store)

		rec := do(r, fixRequest(url.Values{
			"id": {"cmjd100003c"}, "field": {"zip"}, "value": {"abc"},
		}, false))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		got, err := store.Get(context.Background(), "cmjd100003c")
		require.NoError(t, err)
		assert.Equal(t, "abc", directory.Str(got.Zip))
	})

	t.Run("validation rejects", func(t *testing.T) {
		r := newRouter(t, sampleStore(), remediation.WithValidation(remediation.FieldValidation()))

		rec := do(r, fixRequest(url.Values{
			"id": {"cmjd100003c"}, "field": {"zip"}, "value": {"abc"},
		}, false))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "zip:")
	})

	t.Run("unknown record", func(t *testing.T) {
		r := newRouter(t, sampleStore())

		rec := do(r, fixRequest(url.Values{
			"id": {"missing"}, "field": {"zip"}, "value": {"8000"},
		}, false))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), remediation.FailureMessage)
	})

	t.Run("not editable", func(t *testing.T) {
		r := newRouter(t, sampleStore())

		rec := do(r, fixRequest(url.Values{
			"id": {"cmjd100003c"}, "field": {"first_name"}, "value": {"X"},
		}, false))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure shows toast", func(t *testing.T) {
		r := newRouter(t, brokenStore{sampleStore()})

		rec := do(r, fixRequest(url.Values{
			"id": {"cmjd100003c"}, "field": {"zip"}, "value": {"8000"},
		}, true))
		body := rec.Body.String()
		assert.Contains(t, body, "#toast-container")
		assert.Contains(t, body, remediation.FailureMessage)
	})
}

func TestAPI(t *testing.T) {
	t.Parallel()

	r := newRouter(t, sampleStore())

	t.Run("summary", func(t *testing.T) {
		rec := do(r, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data quality.Summary `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(6), resp.Data.Total)
		assert.Equal(t, int64(2), resp.Data.Failures[quality.CheckZip])
	})

	t.Run("checks", func(t *testing.T) {
		rec := do(r, httptest.NewRequest(http.MethodGet, "/api/checks", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []dashboard.CheckInfo `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, len(quality.Checks()))
		assert.Equal(t, quality.CheckZip, resp.Data[0].Name)
		assert.Equal(t, "zip", resp.Data[0].Field)
	})

	t.Run("scan", func(t *testing.T) {
		rec := do(r, httptest.NewRequest(http.MethodGet, "/api/checks/zip?limit=1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []quality.Finding `json:"data"`
			Meta map[string]any    `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "cmjd100003c", resp.Data[0].ID)
		assert.Equal(t, "zip", resp.Meta["check"])
		assert.EqualValues(t, 1, resp.Meta["count"])
	})

	t.Run("unknown check", func(t *testing.T) {
		rec := do(r, httptest.NewRequest(http.MethodGet, "/api/checks/fax", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("bad limit", func(t *testing.T) {
		rec := do(r, httptest.NewRequest(http.MethodGet, "/api/checks/zip?limit=lots", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	})
}

func TestRouterProbes(t *testing.T) {
	t.Parallel()

	r := newRouter(t, sampleStore())
	rec := do(r, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
