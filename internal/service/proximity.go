package service

import (
	"sort"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/geo"
)

// RankedRestaurant is a restaurant annotated with its distance from
// the reference point; DistanceKm is nil when the restaurant has not
// been geocoded yet.
type RankedRestaurant struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	DistanceKm *float64          `json:"distance_km,omitempty"`
}

// RankByProximity orders restaurants by ascending distance from the
// reference point. Restaurants without coordinates sort last instead
// of being dropped, so the UI can still render them; ties break on ID
// for a deterministic order. The result is recomputed on every call,
// nothing is cached.
func RankByProximity(reference domain.Coordinates, restaurants []domain.Restaurant) []RankedRestaurant {
	ranked := make([]RankedRestaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		entry := RankedRestaurant{Restaurant: restaurant}
		if coords, ok := restaurant.Coordinates(); ok {
			distance := geo.Distance(reference, coords)
			entry.DistanceKm = &distance
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := ranked[i].DistanceKm, ranked[j].DistanceKm
		switch {
		case di == nil && dj == nil:
			return ranked[i].Restaurant.ID < ranked[j].Restaurant.ID
		case di == nil:
			return false
		case dj == nil:
			return true
		case *di != *dj:
			return *di < *dj
		default:
			return ranked[i].Restaurant.ID < ranked[j].Restaurant.ID
		}
	})
	return ranked
}
