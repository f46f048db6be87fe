package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
)

// DestinationResolver forward-geocodes the rider's destination text.
type DestinationResolver struct {
	geocoder domain.Geocoder
}

// NewDestinationResolver creates a DestinationResolver.
func NewDestinationResolver(geocoder domain.Geocoder) *DestinationResolver {
	return &DestinationResolver{geocoder: geocoder}
}

// Resolve returns the provider's first point for text. It fails with
// domain.ErrGeocodeFailed on provider errors and domain.ErrNoMatch when
// nothing matched.
func (r *DestinationResolver) Resolve(ctx context.Context, text string) (domain.GeoPoint, error) {
	points, err := r.geocoder.Forward(ctx, text)
	if err != nil {
		if !errors.Is(err, domain.ErrGeocodeFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrGeocodeFailed, err)
		}
		return domain.GeoPoint{}, err
	}
	if len(points) == 0 {
		return domain.GeoPoint{}, fmt.Errorf("%w for %q", domain.ErrNoMatch, text)
	}
	return points[0], nil
}
