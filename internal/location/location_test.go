package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock device ---

type mockDevice struct {
	enabled       bool
	enabledErr    error
	current       domain.PermissionState
	checkErr      error
	requestResult domain.PermissionState
	requestErr    error
	position      domain.GeoPoint
	positionErr   error

	requests      int
	positionCalls int
}

func (m *mockDevice) ServiceEnabled(_ context.Context) (bool, error) {
	return m.enabled, m.enabledErr
}

func (m *mockDevice) CheckPermission(_ context.Context) (domain.PermissionState, error) {
	return m.current, m.checkErr
}

func (m *mockDevice) RequestPermission(_ context.Context) (domain.PermissionState, error) {
	m.requests++
	return m.requestResult, m.requestErr
}

func (m *mockDevice) CurrentPosition(_ context.Context) (domain.GeoPoint, error) {
	m.positionCalls++
	return m.position, m.positionErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- PermissionGate ---

func TestPermissionGate_ServiceDisabledSkipsPrompt(t *testing.T) {
	dev := &mockDevice{enabled: false, current: domain.PermissionDeniedOnce}
	gate := NewPermissionGate(dev, discardLogger())

	state, err := gate.CheckAndRequest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionServiceDisabled, state)
	assert.Equal(t, 0, dev.requests)
}

func TestPermissionGate_AlreadyGranted(t *testing.T) {
	dev := &mockDevice{enabled: true, current: domain.PermissionGranted}
	gate := NewPermissionGate(dev, discardLogger())

	state, err := gate.CheckAndRequest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionGranted, state)
	assert.Equal(t, 0, dev.requests)
}

func TestPermissionGate_RequestOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		current domain.PermissionState
		result  domain.PermissionState
		want    domain.PermissionState
	}{
		{"unrequested then granted", domain.PermissionUnrequested, domain.PermissionGranted, domain.PermissionGranted},
		{"denied then granted", domain.PermissionDeniedOnce, domain.PermissionGranted, domain.PermissionGranted},
		{"denied twice", domain.PermissionDeniedOnce, domain.PermissionDeniedOnce, domain.PermissionDeniedOnce},
		{"denied then forever", domain.PermissionDeniedOnce, domain.PermissionDeniedForever, domain.PermissionDeniedForever},
		{"prompt dismissed", domain.PermissionUnrequested, domain.PermissionUnrequested, domain.PermissionDeniedOnce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &mockDevice{enabled: true, current: tt.current, requestResult: tt.result}
			gate := NewPermissionGate(dev, discardLogger())

			state, err := gate.CheckAndRequest(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
			assert.Equal(t, 1, dev.requests, "exactly one re-request")
		})
	}
}

func TestPermissionGate_DeniedForeverNeverPrompts(t *testing.T) {
	dev := &mockDevice{enabled: true, current: domain.PermissionDeniedForever, requestResult: domain.PermissionGranted}
	gate := NewPermissionGate(dev, discardLogger())

	state, err := gate.CheckAndRequest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionDeniedForever, state)
	assert.Equal(t, 0, dev.requests)
}

func TestPermissionGate_DeviceErrors(t *testing.T) {
	boom := errors.New("binder died")

	_, err := NewPermissionGate(&mockDevice{enabledErr: boom}, discardLogger()).CheckAndRequest(context.Background())
	require.ErrorIs(t, err, boom)

	_, err = NewPermissionGate(&mockDevice{enabled: true, checkErr: boom}, discardLogger()).CheckAndRequest(context.Background())
	require.ErrorIs(t, err, boom)

	_, err = NewPermissionGate(&mockDevice{enabled: true, requestErr: boom}, discardLogger()).CheckAndRequest(context.Background())
	require.ErrorIs(t, err, boom)
}

// --- PositionSource ---

func TestPositionSource_Success(t *testing.T) {
	want := domain.GeoPoint{Latitude: 37.5, Longitude: 127.0}
	dev := &mockDevice{position: want}

	got, err := NewPositionSource(dev).CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, dev.positionCalls)
}

func TestPositionSource_DeviceError(t *testing.T) {
	dev := &mockDevice{positionErr: errors.New("fix timed out")}

	_, err := NewPositionSource(dev).CurrentPosition(context.Background())
	require.ErrorIs(t, err, domain.ErrPositionUnavailable)
	assert.Contains(t, err.Error(), "fix timed out")
}

func TestPositionSource_OutOfRange(t *testing.T) {
	dev := &mockDevice{position: domain.GeoPoint{Latitude: 120, Longitude: 0}}

	_, err := NewPositionSource(dev).CurrentPosition(context.Background())
	require.ErrorIs(t, err, domain.ErrPositionUnavailable)
}
