package remediation

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/therapist-admin/pkg/logger"
	"github.com/dmitrymomot/therapist-admin/pkg/validator"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
)

// Edit is a request to overwrite one field of one record.
type Edit struct {
	ID    string
	Field string
	Value string
}

// Service applies inline edits to directory records.
// Writes are last-write-wins: there is no locking or version check.
type Service struct {
	store     directory.Store
	check     CheckFunc
	onApplied []func(context.Context, Edit)
	metrics   *Metrics
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithValidation inserts check before every write.
// By default values are written without any validation.
func WithValidation(check CheckFunc) Option {
	return func(s *Service) {
		s.check = check
	}
}

// WithOnApplied registers a callback run after each successful write.
func WithOnApplied(fn func(context.Context, Edit)) Option {
	return func(s *Service) {
		if fn != nil {
			s.onApplied = append(s.onApplied, fn)
		}
	}
}

// WithMetrics counts edits by field and outcome.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a remediation service writing to store.
func NewService(store directory.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("remediation"))
	return s
}

// Apply writes e.Value verbatim into e.Field of record e.ID.
// The write is attempted once; it is not retried.
func (s *Service) Apply(ctx context.Context, e Edit) error {
	log := s.logger.With(logger.TherapistID(e.ID), logger.Field(e.Field))

	if err := validator.Apply(validator.RequiredString("id", e.ID)); err != nil {
		s.metrics.IncrementEdit(e.Field, OutcomeRejected)
		return errors.Join(ErrInvalidEdit, err)
	}

	field, err := directory.ParseField(e.Field)
	if err != nil {
		s.metrics.IncrementEdit("unknown", OutcomeNotEditable)
		log.WarnContext(ctx, "edit of non-editable field refused")
		return err
	}

	if s.check != nil {
		if err := s.check(field, e.Value); err != nil {
			s.metrics.IncrementEdit(e.Field, OutcomeRejected)
			log.InfoContext(ctx, "edit rejected by validation", logger.Error(err))
			return errors.Join(ErrRejected, err)
		}
	}

	if err := s.store.UpdateField(ctx, e.ID, field, e.Value); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			s.metrics.IncrementEdit(e.Field, OutcomeNotFound)
			log.WarnContext(ctx, "edit of missing record")
			return ErrRecordNotFound
		}
		s.metrics.IncrementEdit(e.Field, OutcomeFailed)
		log.ErrorContext(ctx, "edit failed", logger.Error(err))
		return errors.Join(ErrUpdateFailed, err)
	}

	s.metrics.IncrementEdit(e.Field, OutcomeApplied)
	log.InfoContext(ctx, "field updated")

	for _, fn := range s.onApplied {
		fn(ctx, e)
	}
	return nil
}
