// Package geo holds the pure distance math used by proximity ranking.
package geo

import (
	"math"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometers using the haversine formula. Inputs outside the valid
// latitude/longitude ranges are clamped rather than rejected, so a
// slightly out-of-range coordinate from an upstream geocoder still
// yields a usable ordering.
func Distance(a, b domain.Coordinates) float64 {
	lat1 := clamp(a.Lat, -90, 90) * math.Pi / 180.0
	lon1 := clamp(a.Lon, -180, 180) * math.Pi / 180.0
	lat2 := clamp(b.Lat, -90, 90) * math.Pi / 180.0
	lon2 := clamp(b.Lon, -180, 180) * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
