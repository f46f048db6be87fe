package domain

import (
	"fmt"
	"math"
)

// GeoPoint is a WGS-84 latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point is a finite coordinate inside WGS-84 bounds.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Latitude, p.Longitude)
}

// AddressCandidate is one reverse-geocoding result.
type AddressCandidate struct {
	AdministrativeArea string `json:"administrative_area"`
	Locality           string `json:"locality"`
	Street             string `json:"street"`
}

// Format renders the candidate as "{administrativeArea} {locality} {street}".
// Empty segments are kept, so a missing locality yields a double space.
func (c AddressCandidate) Format() string {
	return c.AdministrativeArea + " " + c.Locality + " " + c.Street
}

// DestinationQuery is the rider's raw destination input at submit time.
type DestinationQuery struct {
	RawText string
}
