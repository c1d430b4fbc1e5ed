package service

import (
	"math"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

// AggregateRatings reduces a subject's reviews to mean, count and a
// 5-bucket histogram. Each review falls in bucket round(rating),
// rounding half up (a 4.5 counts toward bucket 5), clamped to [1,5].
// An empty input yields the zero summary, never NaN.
func AggregateRatings(reviews []domain.Review) domain.RatingSummary {
	var summary domain.RatingSummary
	if len(reviews) == 0 {
		return summary
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Rating

		bucket := int(math.Floor(review.Rating + 0.5))
		if bucket < 1 {
			bucket = 1
		}
		if bucket > 5 {
			bucket = 5
		}
		summary.Histogram[bucket-1]++
	}

	summary.Count = len(reviews)
	summary.Average = sum / float64(summary.Count)
	for i, count := range summary.Histogram {
		summary.Percentages[i] = 100 * float64(count) / float64(summary.Count)
	}
	return summary
}

// Stars renders a rating value as a fixed sequence of five glyphs:
// one full star per whole point, a half star when the remainder
// reaches 0.5, empty otherwise. The same sequence backs both the
// read-only aggregate display and the editable picker.
func Stars(value float64) [5]domain.Star {
	full := int(math.Floor(value))
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	half := full < 5 && value-float64(full) >= 0.5

	var stars [5]domain.Star
	for i := range stars {
		switch {
		case i < full:
			stars[i] = domain.StarFull
		case i == full && half:
			stars[i] = domain.StarHalf
		default:
			stars[i] = domain.StarEmpty
		}
	}
	return stars
}

// RatingFromPosition maps a picker position across the star bar
// (0..1) to a half-step rating. The store enforces a floor of 1.0, so
// clicks on the leftmost half-star still produce 1.0.
func RatingFromPosition(fraction float64) float64 {
	value := math.Ceil(fraction*10) / 2
	if value < 1 {
		return 1
	}
	if value > 5 {
		return 5
	}
	return value
}

// ValidRating reports whether value is an accepted review rating:
// a multiple of 0.5 between 1.0 and 5.0 inclusive.
func ValidRating(value float64) bool {
	if value < 1 || value > 5 {
		return false
	}
	doubled := value * 2
	return doubled == math.Trunc(doubled)
}

// SummarizeBySubject groups reviews by subject and aggregates each
// group, for annotating a whole feed page in one pass.
func SummarizeBySubject(reviews []domain.Review) map[domain.SubjectKey]domain.RatingSummary {
	grouped := make(map[domain.SubjectKey][]domain.Review)
	for _, review := range reviews {
		key := domain.SubjectKey{Type: review.SubjectType, ID: review.SubjectID}
		grouped[key] = append(grouped[key], review)
	}

	summaries := make(map[domain.SubjectKey]domain.RatingSummary, len(grouped))
	for key, group := range grouped {
		summaries[key] = AggregateRatings(group)
	}
	return summaries
}
