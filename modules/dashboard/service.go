package dashboard

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/therapist-admin/handler"
	"github.com/dmitrymomot/therapist-admin/pkg/binder"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
	"github.com/dmitrymomot/therapist-admin/svc/quality"
	"github.com/dmitrymomot/therapist-admin/svc/remediation"
)

// Scanner is the part of quality.Scanner the dashboard reads from.
type Scanner interface {
	Checks() []quality.Check
	Lookup(name string) (quality.Check, bool)
	Describe(name string) string
	Scan(ctx context.Context, name string, limit int) ([]quality.Finding, error)
	Summary(ctx context.Context) (quality.Summary, error)
}

// Remediator applies inline edits.
type Remediator interface {
	Apply(ctx context.Context, e remediation.Edit) error
}

// Browser lists the newest directory records.
type Browser interface {
	Latest(ctx context.Context, limit int) ([]directory.Therapist, error)
}

// Config holds the dashboard's tunables.
type Config struct {
	// ScanLimit is passed to Scan; zero uses the scanner default.
	ScanLimit int
	// BrowseLimit is the number of records on the data page.
	BrowseLimit int
	// DefaultCheck is shown when /maintenance has no check parameter.
	DefaultCheck string
}

// Service serves the dashboard pages and its JSON API.
type Service struct {
	cfg          Config
	scanner      Scanner
	remediation  Remediator
	browser      Browser
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for failed loads.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates the dashboard service.
func NewService(
	cfg Config,
	scanner Scanner,
	remediator Remediator,
	browser Browser,
	views *Views,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...Option,
) *Service {
	if cfg.BrowseLimit <= 0 {
		cfg.BrowseLimit = 50
	}
	if cfg.DefaultCheck == "" {
		cfg.DefaultCheck = quality.CheckZip
	}
	s := &Service{
		cfg:          cfg,
		scanner:      scanner,
		remediation:  remediator,
		browser:      browser,
		views:        views,
		errorHandler: errorHandler,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the dashboard routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.overview,
		handler.WithErrorHandler[handler.Context, OverviewRequest](s.errorHandler),
	))

	r.Get("/data", handler.Wrap(s.data,
		handler.WithErrorHandler[handler.Context, DataRequest](s.errorHandler),
	))

	r.Get("/maintenance", handler.Wrap(s.maintenance,
		handler.WithBinders[handler.Context, MaintenanceRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, MaintenanceRequest](s.errorHandler),
	))

	r.Post("/maintenance/fix", handler.Wrap(s.fix,
		handler.WithBinders[handler.Context, FixRequest](
			binder.Query(), // check may come from the page URL
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, FixRequest](s.errorHandler),
	))

	r.Route("/api", func(api chi.Router) {
		api.Get("/summary", handler.Wrap(s.apiSummary))
		api.Get("/checks", handler.Wrap(s.apiChecks))
		api.Get("/checks/{check}", handler.Wrap(s.apiScan,
			handler.WithBinders[handler.Context, ScanRequest](
				binder.Path(chi.URLParam),
				binder.Query(),
			),
			handler.WithErrorHandler[handler.Context, ScanRequest](jsonErrorHandler),
		))
	})

	return r
}

func (s *Service) checkName(name string) string {
	if name == "" {
		return s.cfg.DefaultCheck
	}
	return name
}

func maintenanceURL(check string) string {
	return "/maintenance?check=" + url.QueryEscape(check)
}
