package domain

import "time"

// SubjectType tags the two reviewable/favoritable entity kinds.
type SubjectType string

const (
	SubjectRestaurant SubjectType = "restaurant"
	SubjectMenuItem   SubjectType = "menu_item"
)

func (s SubjectType) Valid() bool {
	return s == SubjectRestaurant || s == SubjectMenuItem
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Lat         *float64  `json:"lat"`
	Lon         *float64  `json:"lon"`
	CategoryID  int       `json:"category_id"`
	ImageURL    string    `json:"image_url"`
	RatingTotal float64   `json:"rating_total"`
	RatingCount int       `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Coordinates returns the geocoded position, false until the address
// has been resolved.
func (r *Restaurant) Coordinates() (Coordinates, bool) {
	if r.Lat == nil || r.Lon == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *r.Lat, Lon: *r.Lon}, true
}

func (r *Restaurant) AverageRating() float64 {
	if r.RatingCount == 0 {
		return 0
	}
	return r.RatingTotal / float64(r.RatingCount)
}

type MenuItem struct {
	ID              int       `json:"id"`
	RestaurantID    int       `json:"restaurant_id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Discount        float64   `json:"discount,omitempty"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"image_url"`
	Tags            []string  `json:"tags"`
	EngagementScore int64     `json:"engagement_score"`
	CreatedAt       time.Time `json:"created_at"`
}

// Tagged reports whether the item carries the given category tag.
func (m *MenuItem) Tagged(category string) bool {
	for _, tag := range m.Tags {
		if tag == category {
			return true
		}
	}
	return false
}

type Review struct {
	ID          int         `json:"id"`
	SubjectType SubjectType `json:"subject_type"`
	SubjectID   int         `json:"subject_id"`
	AuthorID    int         `json:"author_id"`
	AuthorName  string      `json:"author_name,omitempty"`
	Rating      float64     `json:"rating"`
	Body        string      `json:"body"`
	CreatedAt   time.Time   `json:"created_at"`
}

type Favorite struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	SubjectType SubjectType `json:"subject_type"`
	SubjectID   int         `json:"subject_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

// UserLocation is the last-known reference point for proximity ranking.
// Superseded on every update, no history kept.
type UserLocation struct {
	UserID    int       `json:"user_id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Address   string    `json:"address"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// ResolvedLocation is the outcome of a successful geocode lookup.
type ResolvedLocation struct {
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address"`
}

// RatingSummary is the reduced form of a subject's reviews: mean,
// count and a per-star histogram with bar-width percentages.
type RatingSummary struct {
	Average     float64    `json:"average"`
	Count       int        `json:"count"`
	Histogram   [5]int     `json:"histogram"`
	Percentages [5]float64 `json:"percentages"`
}

type Star string

const (
	StarFull  Star = "full"
	StarHalf  Star = "half"
	StarEmpty Star = "empty"
)

// SubjectKey identifies a reviewable entity across both kinds.
type SubjectKey struct {
	Type SubjectType
	ID   int
}

// FeedRequest is the explicit per-request context for the feed; the
// core holds no ambient session state.
type FeedRequest struct {
	UserID         int          `json:"user_id"`
	ReferencePoint *Coordinates `json:"reference_point,omitempty"`
	Category       string       `json:"category,omitempty"`
	Keyword        string       `json:"keyword,omitempty"`
}

// FeedItem is the tagged variant rendered by every page: exactly one
// of Restaurant or MenuItem is set, according to Kind.
type FeedItem struct {
	Kind           SubjectType   `json:"kind"`
	Restaurant     *Restaurant   `json:"restaurant,omitempty"`
	MenuItem       *MenuItem     `json:"menu_item,omitempty"`
	RestaurantName string        `json:"restaurant_name,omitempty"`
	DistanceKm     *float64      `json:"distance_km,omitempty"`
	Rating         RatingSummary `json:"rating"`
}

// ScoredMenuItem is a leaderboard entry: a menu item id with its
// engagement score.
type ScoredMenuItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Score      float64 `json:"score"`
}

// EngagementEvent is the kafka payload for fire-and-forget writes:
// detail-page opens and submitted reviews.
type EngagementEvent struct {
	Type        string      `json:"type"`
	MenuItemID  int         `json:"menu_item_id,omitempty"`
	SubjectType SubjectType `json:"subject_type,omitempty"`
	SubjectID   int         `json:"subject_id,omitempty"`
	UserID      int         `json:"user_id,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

const (
	EventMenuEngagement = "menu_engagement"
	EventNewReview      = "new_review"
)
