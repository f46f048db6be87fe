package domain

import "fmt"

// PermissionState classifies device location authorization.
type PermissionState int

const (
	PermissionUnrequested PermissionState = iota
	PermissionGranted
	PermissionDeniedOnce
	PermissionDeniedForever
	// PermissionServiceDisabled short-circuits regardless of authorization.
	PermissionServiceDisabled
)

func (s PermissionState) String() string {
	switch s {
	case PermissionUnrequested:
		return "not_determined"
	case PermissionGranted:
		return "granted"
	case PermissionDeniedOnce:
		return "denied"
	case PermissionDeniedForever:
		return "denied_forever"
	case PermissionServiceDisabled:
		return "service_disabled"
	default:
		return fmt.Sprintf("PermissionState(%d)", int(s))
	}
}

// ParsePermissionState maps the device vocabulary
// (not_determined, denied, denied_forever, granted) to a PermissionState.
func ParsePermissionState(s string) (PermissionState, error) {
	switch s {
	case "not_determined", "unrequested", "":
		return PermissionUnrequested, nil
	case "granted":
		return PermissionGranted, nil
	case "denied":
		return PermissionDeniedOnce, nil
	case "denied_forever":
		return PermissionDeniedForever, nil
	default:
		return PermissionUnrequested, fmt.Errorf("unknown permission state %q", s)
	}
}
