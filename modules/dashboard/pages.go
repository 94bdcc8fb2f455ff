package dashboard

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/therapist-admin/handler"
	"github.com/dmitrymomot/therapist-admin/pkg/logger"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
	"github.com/dmitrymomot/therapist-admin/svc/quality"
	"github.com/dmitrymomot/therapist-admin/svc/remediation"
)

type OverviewRequest struct{}

func (s *Service) overview(ctx handler.Context, _ OverviewRequest) handler.Response {
	sum, err := s.scanner.Summary(ctx)
	if err != nil {
		return handler.Error(fmt.Errorf("load summary: %w", err))
	}

	params := OverviewPageParams{Total: sum.Total, ComputedAt: sum.ComputedAt}
	for _, c := range s.scanner.Checks() {
		params.Tiles = append(params.Tiles, Tile{
			Check:  c.Name,
			Label:  c.Label,
			Count:  sum.Failing(c.Name),
			FixURL: maintenanceURL(c.Name),
		})
	}

	return handler.Templ(s.views.OverviewPage(params))
}

type DataRequest struct{}

func (s *Service) data(ctx handler.Context, _ DataRequest) handler.Response {
	records, err := s.browser.Latest(ctx, s.cfg.BrowseLimit)
	if err != nil {
		return handler.Error(fmt.Errorf("load latest records: %w", err))
	}

	params := DataPageParams{Limit: s.cfg.BrowseLimit, Therapists: make([]TherapistRow, 0, len(records))}
	for _, t := range records {
		params.Therapists = append(params.Therapists, TherapistRow{
			ID:       t.ID,
			Name:     t.FullName(),
			Title:    directory.Str(t.Title),
			Street:   directory.Str(t.Street),
			Zip:      directory.Str(t.Zip),
			City:     directory.Str(t.City),
			Canton:   directory.Str(t.Canton),
			Email:    directory.Str(t.Email),
			Phone:    directory.Str(t.Phone),
			Verified: t.ContactVerified,
		})
	}

	return handler.Templ(s.views.DataPage(params))
}

// MaintenanceRequest selects the check to show; empty means the default check.
type MaintenanceRequest struct {
	Check string `query:"check"`
}

func (s *Service) maintenance(ctx handler.Context, req MaintenanceRequest) handler.Response {
	params, err := s.maintenanceParams(ctx, s.checkName(req.Check))
	if err != nil {
		return handler.Error(err)
	}

	return handler.TemplPartial(
		s.views.MaintenanceBody(params),
		s.views.MaintenancePage(params),
		handler.WithTarget("#maintenance"),
	)
}

// FixRequest is the inline edit form.
type FixRequest struct {
	ID    string `form:"id"`
	Field string `form:"field"`
	Value string `form:"value"`
	Check string `form:"check" query:"check"`
}

func (s *Service) fix(ctx handler.Context, req FixRequest) handler.Response {
	err := s.remediation.Apply(ctx, remediation.Edit{ID: req.ID, Field: req.Field, Value: req.Value})
	if err != nil {
		return handler.Error(fixError(err))
	}

	check := s.checkName(req.Check)
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect(maintenanceURL(check))
	}

	params, err := s.maintenanceParams(ctx, check)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.FixList(params.FixList), handler.WithTarget("#fix-list"))
}

// fixError maps a remediation failure to the status and message shown to the operator.
// Validation rejections keep their field messages.
func fixError(err error) error {
	switch {
	case errors.Is(err, remediation.ErrRecordNotFound):
		return handler.NewHTTPError(http.StatusNotFound, remediation.FailureMessage)
	case errors.Is(err, remediation.ErrRejected):
		return errors.Join(handler.NewHTTPError(http.StatusUnprocessableEntity, remediation.FailureMessage), err)
	case errors.Is(err, remediation.ErrFieldNotEditable), errors.Is(err, remediation.ErrInvalidEdit):
		return handler.NewHTTPError(http.StatusBadRequest, remediation.FailureMessage)
	default:
		return handler.NewHTTPError(http.StatusInternalServerError, remediation.FailureMessage)
	}
}

func (s *Service) maintenanceParams(ctx handler.Context, check string) (MaintenancePageParams, error) {
	findings, err := s.scanner.Scan(ctx, check, s.cfg.ScanLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "scan failed",
			logger.Component("dashboard"),
			logger.Check(check),
			logger.Error(err),
		)
		return MaintenancePageParams{}, fmt.Errorf("scan %s: %w", check, err)
	}

	params := MaintenancePageParams{
		Check:       check,
		Label:       check,
		Description: s.scanner.Describe(check),
		FixList:     FixListParams{Check: check, Findings: make([]FindingRow, 0, len(findings))},
	}
	if c, ok := s.scanner.Lookup(check); ok {
		params.Label = c.Label
		params.FixList.Field = c.Field.String()
	}
	for _, c := range s.scanner.Checks() {
		params.Checks = append(params.Checks, CheckOption{
			Name:   c.Name,
			Label:  c.Label,
			URL:    maintenanceURL(c.Name),
			Active: c.Name == check,
		})
	}
	for _, f := range findings {
		params.FixList.Findings = append(params.FixList.Findings, findingRow(f))
	}
	return params, nil
}

func findingRow(f quality.Finding) FindingRow {
	return FindingRow{
		ID:     f.ID,
		Name:   f.Name,
		Value:  directory.Str(f.Value),
		IsNull: f.Value == nil,
		Reason: f.Reason,
	}
}
