package domain

import "errors"

// Failure kinds surfaced by the resolution workflow. Callers match them with
// errors.Is; adapters wrap provider errors so the original message survives.
var (
	ErrServiceDisabled         = errors.New("location service disabled")
	ErrPermissionDenied        = errors.New("location permission denied")
	ErrPermissionDeniedForever = errors.New("location permission permanently denied")
	ErrPositionUnavailable     = errors.New("position unavailable")
	ErrGeocodeFailed           = errors.New("geocode failed")
	ErrNoMatch                 = errors.New("no matching location")
)
