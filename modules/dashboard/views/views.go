// Package views renders the dashboard pages from embedded HTML templates.
//
// Every page is exposed as a templ.Component so handlers stay unaware of the
// template engine. Full pages share the "head" and "foot" layout blocks;
// fragments such as the fix list render without them and are used as SSE
// patch targets.
package views

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/therapist-admin/handler"
	"github.com/dmitrymomot/therapist-admin/modules/dashboard"
	"github.com/dmitrymomot/therapist-admin/pkg/environment"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.New("views").ParseFS(files, "templates/*.html"))

// page is the layout envelope passed to full-page templates.
type page struct {
	Title string
	Nav   string
	Env   environment.Environment
	Data  any
}

// Dashboard returns the view set consumed by dashboard.Service.
func Dashboard() *dashboard.Views {
	return &dashboard.Views{
		OverviewPage: func(p dashboard.OverviewPageParams) templ.Component {
			return renderPage("overview", "Overview", "overview", p)
		},
		DataPage: func(p dashboard.DataPageParams) templ.Component {
			return renderPage("data", "Data", "data", p)
		},
		MaintenancePage: func(p dashboard.MaintenancePageParams) templ.Component {
			return renderPage("maintenance", p.Label, "maintenance", p)
		},
		MaintenanceBody: func(p dashboard.MaintenancePageParams) templ.Component {
			return render("maintenance-body", p)
		},
		FixList: func(p dashboard.FixListParams) templ.Component {
			return render("fix-list", p)
		},
	}
}

// ErrorPage renders the full error page used by handler.NewErrorHandler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return renderPage("error-page", "Error", "", p)
}

// ErrorToast renders the toast patched into #toast-container on DataStar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	if p.Type == "" {
		p.Type = "error"
	}
	return render("toast", p)
}

func renderPage(name, title, nav string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return execute(w, name, page{
			Title: title,
			Nav:   nav,
			Env:   environment.FromContext(ctx),
			Data:  data,
		})
	})
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return execute(w, name, data)
	})
}

// execute buffers the output so a failing template never leaves a half-written response.
func execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
