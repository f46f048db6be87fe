//go:build mapbox

package mapbox

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/cloudbread0714/tayo-taxi-user/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real Mapbox API and require a valid MAPBOX_TOKEN env var.
// Run with: go test -tags=mapbox ./internal/adapter/mapbox/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	token := os.Getenv("MAPBOX_TOKEN")
	if token == "" {
		t.Fatal("MAPBOX_TOKEN must be set to run smoke tests")
	}
	return NewClient(token, 10*time.Second, Options{Language: "ko", Country: "kr", RequestsPerSecond: 5},
		observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_Forward(t *testing.T) {
	c := smokeClient(t)

	points, err := c.Forward(context.Background(), "서울 강남역")
	require.NoError(t, err)
	require.NotEmpty(t, points)

	assert.InDelta(t, 37.49, points[0].Latitude, 0.1, "lat should be near Gangnam")
	assert.InDelta(t, 127.02, points[0].Longitude, 0.1, "lon should be near Gangnam")
}

func TestSmoke_Reverse(t *testing.T) {
	c := smokeClient(t)

	candidates, err := c.Reverse(context.Background(), domain.GeoPoint{Latitude: 37.5, Longitude: 127.0})
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	assert.NotEmpty(t, candidates[0].AdministrativeArea)
}

func TestSmoke_CachedGeocoder(t *testing.T) {
	cached := NewCachedGeocoder(smokeClient(t), 10, observability.NewMetricsForTesting())

	// First call: cache miss → real API call.
	r1, err := cached.Forward(context.Background(), "서울역")
	require.NoError(t, err)

	// Second call: cache hit → no API call.
	r2, err := cached.Forward(context.Background(), "서울역")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}
