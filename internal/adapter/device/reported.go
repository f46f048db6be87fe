// Package device provides domain.LocationService implementations that do not
// talk to a real handset.
package device

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
)

// Snapshot is what a client reports about its device: the switch state,
// the current permission, what the rider answers if prompted, and the fix.
type Snapshot struct {
	ServiceEnabled bool
	Permission     domain.PermissionState
	RequestResult  domain.PermissionState
	Position       *domain.GeoPoint
	PositionError  string
}

// Reported replays a Snapshot as a LocationService. A permission request
// moves the current permission to the snapshot's RequestResult.
type Reported struct {
	mu       sync.Mutex
	snap     Snapshot
	prompts  int
	position int
}

// NewReported creates a LocationService backed by snap.
func NewReported(snap Snapshot) *Reported {
	return &Reported{snap: snap}
}

func (r *Reported) ServiceEnabled(_ context.Context) (bool, error) {
	return r.snap.ServiceEnabled, nil
}

func (r *Reported) CheckPermission(_ context.Context) (domain.PermissionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap.Permission, nil
}

func (r *Reported) RequestPermission(ctx context.Context) (domain.PermissionState, error) {
	if err := ctx.Err(); err != nil {
		return domain.PermissionUnrequested, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts++
	r.snap.Permission = r.snap.RequestResult
	return r.snap.Permission, nil
}

func (r *Reported) CurrentPosition(ctx context.Context) (domain.GeoPoint, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeoPoint{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position++
	if r.snap.PositionError != "" {
		return domain.GeoPoint{}, errors.New(r.snap.PositionError)
	}
	if r.snap.Position == nil {
		return domain.GeoPoint{}, errors.New("no position reported")
	}
	return *r.snap.Position, nil
}

// Prompts returns how many times the rider was asked for permission.
func (r *Reported) Prompts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prompts
}

// PositionReads returns how many position fixes were taken.
func (r *Reported) PositionReads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}
