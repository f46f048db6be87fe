package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/cloudbread0714/tayo-taxi-user/internal/observability"
)

// Flow holds what every screen activation shares.
type Flow struct {
	geocoder domain.Geocoder
	pickup   domain.PickupFlow
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewFlow creates a Flow.
func NewFlow(geocoder domain.Geocoder, pickup domain.PickupFlow, logger *slog.Logger, metrics *observability.Metrics) *Flow {
	return &Flow{geocoder: geocoder, pickup: pickup, logger: logger, metrics: metrics}
}

// NewSession starts a screen activation for one device. Notices for this
// activation go to notifier.
func (f *Flow) NewSession(device domain.LocationService, notifier domain.Notifier) *Session {
	return &Session{
		origin:      NewOriginResolver(device, f.geocoder, f.logger, f.metrics),
		destination: NewDestinationResolver(f.geocoder),
		handoff:     NewHandoffCoordinator(f.pickup, f.logger, f.metrics),
		notifier:    notifier,
		logger:      f.logger,
		metrics:     f.metrics,
		state:       domain.LoadingOrigin(),
	}
}

// Session is one activation of the trip-start screen. It owns the origin
// state; once closed, late results are dropped instead of applied.
type Session struct {
	origin      *OriginResolver
	destination *DestinationResolver
	handoff     *HandoffCoordinator
	notifier    domain.Notifier
	logger      *slog.Logger
	metrics     *observability.Metrics

	activate sync.Once

	mu     sync.Mutex
	state  domain.OriginState
	closed bool
}

// Activate resolves the origin. Only the first call does any work; later
// calls return the current state.
func (s *Session) Activate(ctx context.Context) domain.OriginState {
	s.activate.Do(func() {
		if s.isClosed() {
			return
		}
		state := s.origin.Resolve(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			s.logger.Debug("session closed during origin resolution, dropping result")
			return
		}
		s.state = state
	})
	return s.Origin()
}

// Origin returns the current origin state.
func (s *Session) Origin() domain.OriginState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close tears the session down. In-flight work completes but its result is
// discarded; an Activate that has not started yet does nothing.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Submit handles the rider pressing "next". With empty text or an
// unresolved origin it does nothing at all. Resolution or delivery failures
// become a single notice. ok reports whether a handoff happened.
func (s *Session) Submit(ctx context.Context, query domain.DestinationQuery) (payload domain.HandoffPayload, ok bool) {
	origin, resolved := s.Origin().Coordinates()
	if query.RawText == "" || !resolved || s.isClosed() {
		s.metrics.DestinationSubmissions.WithLabelValues("ignored").Inc()
		return domain.HandoffPayload{}, false
	}

	dest, err := s.destination.Resolve(ctx, query.RawText)
	if s.isClosed() {
		return domain.HandoffPayload{}, false
	}
	if err != nil {
		outcome := "geocode_failed"
		if errors.Is(err, domain.ErrNoMatch) {
			outcome = "no_match"
		}
		s.metrics.DestinationSubmissions.WithLabelValues(outcome).Inc()
		s.logger.Debug("destination unresolved", "outcome", outcome, "error", err)
		s.notifier.Notify(domain.DestinationFailedMessage(err))
		return domain.HandoffPayload{}, false
	}

	payload, err = s.handoff.Handoff(ctx, query.RawText, origin, dest)
	if err != nil {
		s.metrics.DestinationSubmissions.WithLabelValues("handoff_failed").Inc()
		s.notifier.Notify(domain.HandoffFailedMessage(err))
		return domain.HandoffPayload{}, false
	}

	s.metrics.DestinationSubmissions.WithLabelValues("handed_off").Inc()
	return payload, true
}
