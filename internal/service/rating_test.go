package service

import (
	"testing"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

func TestAggregateRatings_Empty(t *testing.T) {
	summary := AggregateRatings(nil)

	if summary.Average != 0 {
		t.Fatalf("expected average 0, got %f", summary.Average)
	}
	if summary.Count != 0 {
		t.Fatalf("expected count 0, got %d", summary.Count)
	}
	for i, count := range summary.Histogram {
		if count != 0 {
			t.Fatalf("expected empty histogram, bucket %d has %d", i+1, count)
		}
	}
}

func TestAggregateRatings_TwoReviews(t *testing.T) {
	summary := AggregateRatings([]domain.Review{
		{Rating: 5},
		{Rating: 3},
	})

	if summary.Average != 4 {
		t.Fatalf("expected average 4, got %f", summary.Average)
	}
	if summary.Count != 2 {
		t.Fatalf("expected count 2, got %d", summary.Count)
	}
	if summary.Histogram[4] != 1 || summary.Histogram[2] != 1 {
		t.Fatalf("unexpected histogram %v", summary.Histogram)
	}
	if summary.Histogram[0] != 0 || summary.Histogram[1] != 0 || summary.Histogram[3] != 0 {
		t.Fatalf("unexpected histogram %v", summary.Histogram)
	}
	if summary.Percentages[4] != 50 || summary.Percentages[2] != 50 {
		t.Fatalf("unexpected percentages %v", summary.Percentages)
	}
}

func TestAggregateRatings_HalfStarRoundsUp(t *testing.T) {
	// Round-half-up: a 4.5 counts toward bucket 5.
	summary := AggregateRatings([]domain.Review{{Rating: 4.5}})

	if summary.Histogram[4] != 1 {
		t.Fatalf("expected 4.5 in bucket 5, histogram %v", summary.Histogram)
	}
	if summary.Histogram[3] != 0 {
		t.Fatalf("expected empty bucket 4, histogram %v", summary.Histogram)
	}
}

func TestStars_ThreeAndAHalf(t *testing.T) {
	stars := Stars(3.5)

	expected := [5]domain.Star{
		domain.StarFull, domain.StarFull, domain.StarFull,
		domain.StarHalf, domain.StarEmpty,
	}
	if stars != expected {
		t.Fatalf("expected %v, got %v", expected, stars)
	}
}

func TestStars_Extremes(t *testing.T) {
	for _, star := range Stars(5.0) {
		if star != domain.StarFull {
			t.Fatalf("expected all full for 5.0, got %v", Stars(5.0))
		}
	}
	for _, star := range Stars(0) {
		if star != domain.StarEmpty {
			t.Fatalf("expected all empty for 0, got %v", Stars(0))
		}
	}
}

func TestRatingFromPosition_FloorsAtOne(t *testing.T) {
	if got := RatingFromPosition(0.01); got != 1.0 {
		t.Fatalf("expected floor of 1.0, got %f", got)
	}
	if got := RatingFromPosition(0); got != 1.0 {
		t.Fatalf("expected floor of 1.0, got %f", got)
	}
}

func TestRatingFromPosition_HalfSteps(t *testing.T) {
	cases := []struct {
		fraction float64
		want     float64
	}{
		{0.30, 1.5},
		{0.50, 2.5},
		{0.70, 3.5},
		{1.00, 5.0},
	}
	for _, c := range cases {
		if got := RatingFromPosition(c.fraction); got != c.want {
			t.Fatalf("fraction %f: expected %f, got %f", c.fraction, c.want, got)
		}
	}
}

func TestValidRating(t *testing.T) {
	valid := []float64{1.0, 1.5, 2.0, 3.5, 4.5, 5.0}
	for _, v := range valid {
		if !ValidRating(v) {
			t.Fatalf("expected %f to be valid", v)
		}
	}

	invalid := []float64{0, 0.5, 5.5, 4.3, -1, 2.25}
	for _, v := range invalid {
		if ValidRating(v) {
			t.Fatalf("expected %f to be invalid", v)
		}
	}
}

func TestSummarizeBySubject_GroupsByKindAndID(t *testing.T) {
	summaries := SummarizeBySubject([]domain.Review{
		{SubjectType: domain.SubjectRestaurant, SubjectID: 1, Rating: 4},
		{SubjectType: domain.SubjectRestaurant, SubjectID: 1, Rating: 2},
		{SubjectType: domain.SubjectMenuItem, SubjectID: 1, Rating: 5},
	})

	restaurant := summaries[domain.SubjectKey{Type: domain.SubjectRestaurant, ID: 1}]
	if restaurant.Average != 3 || restaurant.Count != 2 {
		t.Fatalf("unexpected restaurant summary %+v", restaurant)
	}

	item := summaries[domain.SubjectKey{Type: domain.SubjectMenuItem, ID: 1}]
	if item.Average != 5 || item.Count != 1 {
		t.Fatalf("unexpected menu item summary %+v", item)
	}
}
