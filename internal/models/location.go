package models

import "strings"

// Location is either a free-text address or a coordinate pair.
type Location struct {
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// NewCoordinates builds a Location from a latitude/longitude pair
func NewCoordinates(latitude, longitude float64) Location {
	return Location{Latitude: &latitude, Longitude: &longitude}
}

// HasCoordinates reports whether both coordinates are set
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// IsValidLocation is true if loc has coordinates or a non-blank address.
func IsValidLocation(loc Location) bool {
	return loc.HasCoordinates() || strings.TrimSpace(loc.Address) != ""
}
