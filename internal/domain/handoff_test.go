package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandoffPayload(t *testing.T) {
	now := time.Date(2026, time.March, 3, 9, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { SetClock(nil) })

	origin := GeoPoint{Latitude: 37.5, Longitude: 127.0}
	dest := GeoPoint{Latitude: 37.498, Longitude: 127.028}

	p := NewHandoffPayload("서울 강남역", origin, dest)

	assert.Equal(t, "서울 강남역", p.Label)
	assert.Equal(t, origin, p.Origin)
	assert.Equal(t, dest, p.Destination)
	assert.Equal(t, now, p.CreatedAt)
	_, err := uuid.Parse(p.ID)
	require.NoError(t, err)

	other := NewHandoffPayload("서울 강남역", origin, dest)
	assert.NotEqual(t, p.ID, other.ID)
}
