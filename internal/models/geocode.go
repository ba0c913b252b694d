package models

import (
	"fmt"
	"strconv"
)

// Coordinates is a WGS-84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// Suggestion is a place-search candidate. Coordinates arrive as text from
// the search service.
type Suggestion struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (s Suggestion) Coordinates() (Coordinates, error) {
	lat, err := strconv.ParseFloat(s.Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q: %w", s.Lat, err)
	}
	lon, err := strconv.ParseFloat(s.Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q: %w", s.Lon, err)
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// RouteLookup is the outcome of a driving-route query.
type RouteLookup struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationSeconds float64 `json:"duration_seconds"`
	Provider        string  `json:"provider"`
}
