package domain

import "context"

// LocationService is the device's location stack.
type LocationService interface {
	// ServiceEnabled reports whether device location is switched on at all.
	ServiceEnabled(ctx context.Context) (bool, error)

	// CheckPermission reads the current authorization without prompting.
	CheckPermission(ctx context.Context) (PermissionState, error)

	// RequestPermission prompts the rider and returns the resulting authorization.
	RequestPermission(ctx context.Context) (PermissionState, error)

	// CurrentPosition takes a single position fix.
	CurrentPosition(ctx context.Context) (GeoPoint, error)
}

// Geocoder resolves addresses in both directions. Results keep the
// provider's ranking; consumers use the first element.
type Geocoder interface {
	// Reverse converts a point to address candidates.
	Reverse(ctx context.Context, point GeoPoint) ([]AddressCandidate, error)

	// Forward converts free text to candidate points.
	Forward(ctx context.Context, text string) ([]GeoPoint, error)
}

// Notifier shows a transient message to the rider.
type Notifier interface {
	Notify(message string)
}

// PickupFlow takes over once a handoff payload is built.
type PickupFlow interface {
	StartPickup(ctx context.Context, payload HandoffPayload) error
}
