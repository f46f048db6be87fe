package domain

import (
	"time"

	"github.com/google/uuid"
)

// HandoffPayload is what the pickup flow receives once both ends are resolved.
type HandoffPayload struct {
	ID          string    `json:"handoff_id"`
	Label       string    `json:"destination_label"`
	Origin      GeoPoint  `json:"current_location"`
	Destination GeoPoint  `json:"pickup_location"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewHandoffPayload builds a payload with a fresh ID stamped with the domain clock.
func NewHandoffPayload(label string, origin, destination GeoPoint) HandoffPayload {
	return HandoffPayload{
		ID:          uuid.NewString(),
		Label:       label,
		Origin:      origin,
		Destination: destination,
		CreatedAt:   clock.Now().UTC(),
	}
}
