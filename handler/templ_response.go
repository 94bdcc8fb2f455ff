package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector of the element the component patches.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options, used by TemplMulti.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch creates a TemplPatch.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// templResponse renders either partials over SSE or a full page as HTML.
type templResponse struct {
	patches []TemplPatch   // sent to DataStar requests
	full    templ.Component // rendered for regular requests; nil concatenates patches
	status  int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders component as HTML, or as a single SSE patch for DataStar requests.
//
//	return handler.Templ(views.Toast(msg), handler.WithTarget("#toast-container"))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplPartial patches partial for DataStar requests and renders full otherwise.
//
//	return handler.TemplPartial(
//		views.FixList(params),
//		views.MaintenancePage(params),
//		handler.WithTarget("#fix-list"),
//	)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{
		patches: []TemplPatch{Patch(partial, opts...)},
		full:    full,
	}
}

// TemplMulti sends one SSE patch per component for DataStar requests.
// Regular requests get the components concatenated in order.
//
//	return handler.TemplMulti(
//		handler.Patch(views.FixList(params), handler.WithTarget("#fix-list")),
//		handler.Patch(views.Toast(toast), handler.WithTarget("#toast-container"),
//			handler.WithPatchMode(handler.PatchPrepend)),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}

// TemplStatus renders component as a full HTML page with the given status code.
func TemplStatus(status int, component templ.Component) Response {
	return templResponse{
		patches: []TemplPatch{Patch(component)},
		full:    component,
		status:  status,
	}
}
