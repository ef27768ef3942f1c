package location

import (
	"context"
	"errors"
	"time"

	"tagfinder/internal/domain"
	"tagfinder/internal/logging"
)

// DefaultTimeout bounds a single gateway call.
const DefaultTimeout = 30 * time.Second

// Service implements domain.LocationFetcher.
type Service struct {
	client   domain.RemoteClient
	sessions domain.SessionStore
	reports  domain.ReportStore
	history  domain.HistoryStore
	timeout  time.Duration
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithHistory appends every found report to h.
func WithHistory(h domain.HistoryStore) Option {
	return func(s *Service) { s.history = h }
}

// WithTimeout bounds each gateway call. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithClock overrides the clock used to stamp FetchedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New constructs a Service.
func New(
	client domain.RemoteClient,
	sessions domain.SessionStore,
	reports domain.ReportStore,
	opts ...Option,
) *Service {
	s := &Service{
		client:   client,
		sessions: sessions,
		reports:  reports,
		timeout:  DefaultTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch makes one lookup for key.
//
// The returned outcome is always meaningful. The returned session is the one
// to use next. A non-nil error means local persistence failed; the outcome
// still describes what the gateway said.
func (s *Service) Fetch(
	ctx context.Context,
	session domain.Session,
	key domain.KeyMaterial,
) (domain.FetchOutcome, domain.Session, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	report, next, err := s.client.FetchLocation(callCtx, session, key)
	if next.IsZero() {
		next = session
	}

	var outcome domain.FetchOutcome
	switch {
	case err == nil:
		report.FetchedAt = s.now().UTC()
		outcome = domain.Found(report)
	case errors.Is(err, domain.ErrNotFound):
		logging.Infof("no location reports yet")
		outcome = domain.NotFound()
	default:
		logging.Warnf("fetch failed: %v", err)
		outcome = domain.TransientFailure(err.Error(), err)
	}

	if serr := s.sessions.SaveSession(next); serr != nil {
		return outcome, next, serr
	}
	if outcome.Kind != domain.OutcomeFound {
		return outcome, next, nil
	}

	if rerr := s.reports.SaveReport(outcome.Report); rerr != nil {
		return outcome, next, rerr
	}
	if s.history != nil {
		if herr := s.history.AppendReport(ctx, outcome.Report); herr != nil {
			logging.Warnf("recording history: %v", herr)
		}
	}
	logging.Debugf("location %.6f,%.6f at %s", report.Latitude, report.Longitude, report.Timestamp)
	return outcome, next, nil
}

// Err converts a failed outcome to an error. Found and NotFound give nil.
func Err(o domain.FetchOutcome) error {
	if o.Kind != domain.OutcomeTransientFailure {
		return nil
	}
	return &domain.TransientFetchError{Detail: o.Detail, Err: o.Err}
}

// Compile-time assertion that Service implements domain.LocationFetcher.
var _ domain.LocationFetcher = (*Service)(nil)
