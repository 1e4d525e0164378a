package geo

import "math"

// Coordinate is a geographic point in degrees. Construct one with
// NewCoordinate so the range invariants hold; the value is immutable
// once built.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate clamps latitude to [-90, 90] and normalizes longitude
// into [-180, 180).
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{
		Latitude:  clampLatitude(lat),
		Longitude: normalizeLongitude(lng),
	}
}

func clampLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func normalizeLongitude(lng float64) float64 {
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return lng - 180
}
