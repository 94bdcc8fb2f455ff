package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Patch modes used by the dashboard. PatchOuter morphs the target and is the
// datastar default; the insert modes are used for toasts.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r was issued by the datastar client: it accepts an
// event stream, carries signals in the "datastar" query parameter, or posts a
// datastar body.
func IsDataStar(r *http.Request) bool {
	switch {
	case strings.Contains(r.Header.Get("Accept"), "text/event-stream"):
		return true
	case r.URL.Query().Has("datastar"):
		return true
	default:
		return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
	}
}

// redirect answers a plain request with 303 See Other, so a posted form is
// followed by a GET. DataStar requests navigate through an SSE script patch.
type redirect string

func (to redirect) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		http.Redirect(w, r, string(to), http.StatusSeeOther)
		return nil
	}
	return datastar.NewSSE(w, r).Redirect(string(to))
}

// Redirect sends the operator to url after a successful action.
//
// Example:
//
//	return handler.Redirect("/maintenance?check=" + url.QueryEscape(req.Check))
func Redirect(url string) Response {
	return redirect(url)
}
