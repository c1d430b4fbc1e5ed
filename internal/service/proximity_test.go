package service

import (
	"testing"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

func coord(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func TestRankByProximity_AscendingDistances(t *testing.T) {
	reference := domain.Coordinates{Lat: 8.2280, Lon: 124.2452}

	far := domain.Restaurant{ID: 1, Name: "Villa Tuna"}
	far.Lat, far.Lon = coord(8.35, 124.40)
	near := domain.Restaurant{ID: 2, Name: "Mui's Cupsilog"}
	near.Lat, near.Lon = coord(8.2285, 124.2455)
	mid := domain.Restaurant{ID: 3, Name: "Fish Head"}
	mid.Lat, mid.Lon = coord(8.25, 124.26)

	ranked := RankByProximity(reference, []domain.Restaurant{far, near, mid})

	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if *ranked[i-1].DistanceKm > *ranked[i].DistanceKm {
			t.Fatalf("distances not non-decreasing at index %d", i)
		}
	}
	if ranked[0].Restaurant.ID != 2 {
		t.Fatalf("expected nearest restaurant first, got ID %d", ranked[0].Restaurant.ID)
	}
}

func TestRankByProximity_UngeocodedSortLast(t *testing.T) {
	reference := domain.Coordinates{Lat: 8.2280, Lon: 124.2452}

	pending := domain.Restaurant{ID: 9, Name: "Ah Mei's Kitchen"}
	resolved := domain.Restaurant{ID: 1, Name: "Avodah Kitchen"}
	resolved.Lat, resolved.Lon = coord(8.24, 124.25)

	ranked := RankByProximity(reference, []domain.Restaurant{pending, resolved})

	if len(ranked) != 2 {
		t.Fatalf("ungeocoded restaurant was dropped")
	}
	if ranked[0].Restaurant.ID != 1 {
		t.Fatalf("resolved restaurant should come first")
	}
	if ranked[1].DistanceKm != nil {
		t.Fatalf("ungeocoded restaurant should have no distance annotation")
	}
}

func TestRankByProximity_SamePointIsZeroDistance(t *testing.T) {
	reference := domain.Coordinates{Lat: 14.60, Lon: 120.98}
	restaurant := domain.Restaurant{ID: 1, Name: "Tuna Express"}
	restaurant.Lat, restaurant.Lon = coord(14.60, 120.98)

	ranked := RankByProximity(reference, []domain.Restaurant{restaurant})

	if d := *ranked[0].DistanceKm; d > 1e-9 {
		t.Fatalf("expected ~0 km, got %f", d)
	}
}

func TestRankByProximity_TiesBreakOnID(t *testing.T) {
	reference := domain.Coordinates{Lat: 8.0, Lon: 124.0}

	b := domain.Restaurant{ID: 7}
	b.Lat, b.Lon = coord(8.1, 124.0)
	a := domain.Restaurant{ID: 4}
	a.Lat, a.Lon = coord(8.1, 124.0)

	ranked := RankByProximity(reference, []domain.Restaurant{b, a})
	if ranked[0].Restaurant.ID != 4 || ranked[1].Restaurant.ID != 7 {
		t.Fatalf("expected ID order 4,7 on equal distance, got %d,%d",
			ranked[0].Restaurant.ID, ranked[1].Restaurant.ID)
	}
}
