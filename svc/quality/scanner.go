package quality

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/therapist-admin/pkg/logger"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
)

const (
	// DefaultLimit is the number of findings returned when the caller passes no limit.
	DefaultLimit = 100
	// MaxLimit caps a single scan unless configured otherwise.
	MaxLimit = 100
)

// Finding is a record that fails a check.
type Finding struct {
	Therapist directory.Therapist `json:"-"`
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Check     string              `json:"check"`
	Field     directory.Field     `json:"field"`
	Value     *string             `json:"value"`
	Reason    string              `json:"reason"`
}

// Summary holds the directory size and the failing count of every check.
type Summary struct {
	Total      int64            `json:"total"`
	Failures   map[string]int64 `json:"failures"`
	ComputedAt time.Time        `json:"computed_at"`
}

// Failing returns the failing count for check, zero when unknown.
func (s Summary) Failing(check string) int64 {
	return s.Failures[check]
}

// Scanner runs data-quality checks against a directory store.
type Scanner struct {
	store        directory.Store
	cache        Cache
	metrics      *Metrics
	logger       *slog.Logger
	defaultLimit int
	maxLimit     int
	now          func() time.Time

	// generation is bumped by Invalidate. A result is cached only if no
	// invalidation happened while it was being computed.
	generation atomic.Uint64
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithCache caches summaries and counts. Without it every call hits the store.
func WithCache(c Cache) Option {
	return func(s *Scanner) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithMetrics publishes failing counts and query latency.
func WithMetrics(m *Metrics) Option {
	return func(s *Scanner) {
		s.metrics = m
	}
}

// WithLogger sets a custom logger for the scanner.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLimits overrides the default and maximum number of findings per scan.
// Non-positive values keep the current setting.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(s *Scanner) {
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if s.defaultLimit > s.maxLimit {
			s.defaultLimit = s.maxLimit
		}
	}
}

// NewScanner creates a scanner over store.
func NewScanner(store directory.Store, opts ...Option) *Scanner {
	s := &Scanner{
		store:        store,
		cache:        NoOpCache{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("quality"))
	return s
}

// Checks returns the registered checks in display order.
func (s *Scanner) Checks() []Check {
	return Checks()
}

// Describe returns the description of a check or NoDescription.
func (s *Scanner) Describe(name string) string {
	return Describe(name)
}

// Lookup reports whether a check named name exists.
func (s *Scanner) Lookup(name string) (Check, bool) {
	return Lookup(name)
}

// Scan returns up to limit records failing the named check, ordered by id.
// A non-positive limit selects the default; larger limits are capped.
// Unknown checks yield no findings and no error.
func (s *Scanner) Scan(ctx context.Context, name string, limit int) ([]Finding, error) {
	check, ok := Lookup(name)
	if !ok {
		return []Finding{}, nil
	}

	start := time.Now()
	rows, err := s.store.Find(ctx, check.Predicate, s.limit(limit))
	s.metrics.ObserveQuery("scan", time.Since(start))
	if err != nil {
		s.logger.ErrorContext(ctx, "scan failed", logger.Check(name), logger.Error(err))
		return nil, errors.Join(ErrScanFailed, err)
	}

	findings := make([]Finding, 0, len(rows))
	for _, t := range rows {
		res, failing := check.Failing(t)
		if !failing {
			s.metrics.IncrementDrift(name)
			s.logger.WarnContext(ctx, "store predicate selected a valid record",
				logger.Check(name),
				logger.TherapistID(t.ID),
				logger.Field(check.Field.String()),
			)
			continue
		}
		findings = append(findings, Finding{
			Therapist: t,
			ID:        t.ID,
			Name:      t.FullName(),
			Check:     name,
			Field:     check.Field,
			Value:     t.Value(check.Field),
			Reason:    res.Error,
		})
	}
	return findings, nil
}

// CountFailures returns the number of records failing the named check.
// Unknown checks count zero.
func (s *Scanner) CountFailures(ctx context.Context, name string) (int64, error) {
	check, ok := Lookup(name)
	if !ok {
		return 0, nil
	}

	key := "count:" + name
	if raw, ok := s.cache.Get(ctx, key); ok {
		if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
			return n, nil
		}
	}

	gen := s.generation.Load()
	start := time.Now()
	n, err := s.store.Count(ctx, check.Predicate)
	s.metrics.ObserveQuery("count", time.Since(start))
	if err != nil {
		s.logger.ErrorContext(ctx, "count failed", logger.Check(name), logger.Error(err))
		return 0, errors.Join(ErrCountFailed, err)
	}

	s.metrics.SetFailing(name, n)
	s.remember(ctx, gen, key, []byte(strconv.FormatInt(n, 10)))
	return n, nil
}

// Summary returns the directory size and every check's failing count,
// computed in a single store round trip and cached.
func (s *Scanner) Summary(ctx context.Context) (Summary, error) {
	if raw, ok := s.cache.Get(ctx, "summary"); ok {
		var sum Summary
		if err := json.Unmarshal(raw, &sum); err == nil {
			return sum, nil
		}
	}

	checks := Checks()
	preds := make([]directory.Predicate, len(checks))
	for i, c := range checks {
		preds[i] = c.Predicate
	}

	gen := s.generation.Load()
	start := time.Now()
	total, counts, err := s.store.CountEach(ctx, preds...)
	s.metrics.ObserveQuery("summary", time.Since(start))
	if err != nil {
		s.logger.ErrorContext(ctx, "summary failed", logger.Error(err))
		return Summary{}, errors.Join(ErrSummaryFailed, err)
	}

	sum := Summary{
		Total:      total,
		Failures:   make(map[string]int64, len(checks)),
		ComputedAt: s.now().UTC(),
	}
	s.metrics.SetTotal(total)
	for i, c := range checks {
		sum.Failures[c.Name] = counts[i]
		s.metrics.SetFailing(c.Name, counts[i])
	}

	if raw, err := json.Marshal(sum); err == nil {
		s.remember(ctx, gen, "summary", raw)
	}
	return sum, nil
}

// Invalidate drops cached summaries and counts. Computations already in
// flight finish but do not write their results back.
func (s *Scanner) Invalidate(ctx context.Context) error {
	s.generation.Add(1)
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to clear quality cache", logger.Error(err))
		return err
	}
	return nil
}

func (s *Scanner) remember(ctx context.Context, gen uint64, key string, value []byte) {
	if s.generation.Load() != gen {
		s.logger.DebugContext(ctx, "skipped caching stale quality result", slog.String("key", key))
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.WarnContext(ctx, "failed to cache quality result", slog.String("key", key), logger.Error(err))
	}
}

func (s *Scanner) limit(n int) int {
	if n <= 0 {
		return s.defaultLimit
	}
	if n > s.maxLimit {
		return s.maxLimit
	}
	return n
}
