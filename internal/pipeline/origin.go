package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/cloudbread0714/tayo-taxi-user/internal/location"
	"github.com/cloudbread0714/tayo-taxi-user/internal/observability"
)

// OriginResolver runs permission → position → reverse geocode, strictly in
// that order, and folds every outcome into a domain.OriginState.
type OriginResolver struct {
	gate     *location.PermissionGate
	position *location.PositionSource
	geocoder domain.Geocoder
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewOriginResolver creates a resolver over one device.
func NewOriginResolver(device domain.LocationService, geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *OriginResolver {
	return &OriginResolver{
		gate:     location.NewPermissionGate(device, logger),
		position: location.NewPositionSource(device),
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
	}
}

// Resolve never fails: every error ends in a Failed state carrying its reason.
func (r *OriginResolver) Resolve(ctx context.Context) domain.OriginState {
	state := r.resolve(ctx)

	outcome := domain.OriginResolved.String()
	if state.Status() == domain.OriginFailed {
		outcome = state.Reason().String()
		r.logger.Info("origin unresolved", "reason", outcome, "error", state.Err())
	}
	r.metrics.OriginResolutions.WithLabelValues(outcome).Inc()
	return state
}

func (r *OriginResolver) resolve(ctx context.Context) domain.OriginState {
	perm, err := r.gate.CheckAndRequest(ctx)
	if err != nil {
		r.logger.Warn("location permission check failed", "error", err)
		return domain.FailedOrigin(domain.ReasonPositionUnavailable, fmt.Errorf("%w: %w", domain.ErrPositionUnavailable, err))
	}

	switch perm {
	case domain.PermissionGranted:
	case domain.PermissionServiceDisabled:
		return domain.FailedOrigin(domain.ReasonServiceDisabled, domain.ErrServiceDisabled)
	case domain.PermissionDeniedForever:
		return domain.FailedOrigin(domain.ReasonPermissionDeniedForever, domain.ErrPermissionDeniedForever)
	default:
		return domain.FailedOrigin(domain.ReasonPermissionDenied, domain.ErrPermissionDenied)
	}

	point, err := r.position.CurrentPosition(ctx)
	if err != nil {
		return domain.FailedOrigin(domain.ReasonPositionUnavailable, err)
	}

	candidates, err := r.geocoder.Reverse(ctx, point)
	if err != nil {
		if !errors.Is(err, domain.ErrGeocodeFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrGeocodeFailed, err)
		}
		r.logger.Warn("reverse geocoding failed", "lat", point.Latitude, "lon", point.Longitude, "error", err)
		return domain.FailedOrigin(domain.ReasonReverseGeocodeFailed, err)
	}
	// A point without an address is not an origin.
	if len(candidates) == 0 {
		return domain.FailedOrigin(domain.ReasonNoAddressFound, nil)
	}

	return domain.ResolvedOrigin(candidates[0].Format(), point)
}
