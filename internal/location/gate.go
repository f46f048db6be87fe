// Package location wraps the device location stack: authorization and
// single-shot position fixes.
package location

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
)

// PermissionGate decides whether the device may be asked for a position.
type PermissionGate struct {
	device domain.LocationService
	logger *slog.Logger
}

// NewPermissionGate creates a gate over the given device.
func NewPermissionGate(device domain.LocationService, logger *slog.Logger) *PermissionGate {
	return &PermissionGate{device: device, logger: logger}
}

// CheckAndRequest returns the authorization to act on. A disabled location
// service wins over any permission. An unrequested or once-denied permission
// is re-requested exactly once; a permanently denied one is never prompted.
func (g *PermissionGate) CheckAndRequest(ctx context.Context) (domain.PermissionState, error) {
	enabled, err := g.device.ServiceEnabled(ctx)
	if err != nil {
		return domain.PermissionUnrequested, fmt.Errorf("query location service: %w", err)
	}
	if !enabled {
		return domain.PermissionServiceDisabled, nil
	}

	state, err := g.device.CheckPermission(ctx)
	if err != nil {
		return domain.PermissionUnrequested, fmt.Errorf("check permission: %w", err)
	}

	if state == domain.PermissionUnrequested || state == domain.PermissionDeniedOnce {
		g.logger.Debug("requesting location permission", "current", state.String())
		state, err = g.device.RequestPermission(ctx)
		if err != nil {
			return domain.PermissionUnrequested, fmt.Errorf("request permission: %w", err)
		}
		// A dismissed prompt leaves the permission undetermined; treat it as a denial.
		if state == domain.PermissionUnrequested {
			state = domain.PermissionDeniedOnce
		}
	}

	return state, nil
}
