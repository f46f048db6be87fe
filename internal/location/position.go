package location

import (
	"context"
	"fmt"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
)

// PositionSource takes point-in-time fixes from an authorized device.
type PositionSource struct {
	device domain.LocationService
}

// NewPositionSource creates a PositionSource over the given device.
func NewPositionSource(device domain.LocationService) *PositionSource {
	return &PositionSource{device: device}
}

// CurrentPosition reads one fix. Device errors and out-of-range readings
// fail with domain.ErrPositionUnavailable.
func (s *PositionSource) CurrentPosition(ctx context.Context) (domain.GeoPoint, error) {
	p, err := s.device.CurrentPosition(ctx)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("%w: %w", domain.ErrPositionUnavailable, err)
	}
	if !p.Valid() {
		return domain.GeoPoint{}, fmt.Errorf("%w: reading out of range %s", domain.ErrPositionUnavailable, p)
	}
	return p, nil
}
