package dashboard

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/therapist-admin/handler"
	"github.com/dmitrymomot/therapist-admin/pkg/binder"
	"github.com/dmitrymomot/therapist-admin/pkg/logger"
)

type SummaryRequest struct{}

func (s *Service) apiSummary(ctx handler.Context, _ SummaryRequest) handler.Response {
	sum, err := s.scanner.Summary(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "summary failed", logger.Component("dashboard"), logger.Error(err))
		return handler.JSONError(handler.ErrInternalServerError)
	}
	return handler.JSON(sum)
}

// CheckInfo describes a registered check in the API.
type CheckInfo struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Field       string `json:"field"`
}

type ChecksRequest struct{}

func (s *Service) apiChecks(_ handler.Context, _ ChecksRequest) handler.Response {
	checks := s.scanner.Checks()
	out := make([]CheckInfo, 0, len(checks))
	for _, c := range checks {
		out = append(out, CheckInfo{
			Name:        c.Name,
			Label:       c.Label,
			Description: c.Description,
			Field:       c.Field.String(),
		})
	}
	return handler.JSON(out)
}

// ScanRequest selects a check and an optional result limit.
type ScanRequest struct {
	Check string `path:"check"`
	Limit int    `query:"limit"`
}

func (s *Service) apiScan(ctx handler.Context, req ScanRequest) handler.Response {
	c, ok := s.scanner.Lookup(req.Check)
	if !ok {
		return handler.JSONError(handler.ErrNotFound)
	}

	findings, err := s.scanner.Scan(ctx, c.Name, req.Limit)
	if err != nil {
		s.log.ErrorContext(ctx, "scan failed",
			logger.Component("dashboard"),
			logger.Check(c.Name),
			logger.Error(err),
		)
		return handler.JSONError(handler.ErrInternalServerError)
	}

	return handler.JSON(findings, handler.WithJSONMeta(map[string]any{
		"check":       c.Name,
		"description": c.Description,
		"count":       len(findings),
	}))
}

// jsonErrorHandler answers binding failures on API routes with a JSON body.
func jsonErrorHandler(ctx handler.Context, err error) {
	if errors.Is(err, binder.ErrInvalidQuery) || errors.Is(err, binder.ErrInvalidPath) {
		err = handler.NewHTTPError(http.StatusBadRequest, "bad_request")
	}
	_ = handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}
