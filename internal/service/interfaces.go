package service

import (
	"context"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

// Collaborator contracts. The data store and the geocoding service are
// external; everything behind these interfaces may fail and is adapted
// to typed outcomes at the boundary.

type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	ListAllMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) error
	Exists(ctx context.Context, authorID int, subjectType domain.SubjectType, subjectID int) (bool, error)
	ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int) ([]domain.Review, error)
	ListByKind(ctx context.Context, subjectType domain.SubjectType) ([]domain.Review, error)
}

type FavoriteRepository interface {
	Toggle(ctx context.Context, userID int, subjectType domain.SubjectType, subjectID int) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Favorite, error)
}

type LocationRepository interface {
	Upsert(ctx context.Context, location domain.UserLocation) error
	Get(ctx context.Context, userID int) (*domain.UserLocation, error)
}

type ReviewMarkerCache interface {
	MarkerKey(authorID int, subjectType domain.SubjectType, subjectID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type EngagementLeaderboard interface {
	Top(ctx context.Context, n int64) ([]domain.ScoredMenuItem, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.EngagementEvent) error
}

type Geocoder interface {
	Forward(ctx context.Context, text string) (*domain.ResolvedLocation, error)
	Reverse(ctx context.Context, lat, lon float64) (string, error)
	Autocomplete(ctx context.Context, partial string) ([]domain.ResolvedLocation, error)
}

type QRGenerator interface {
	Generate(restaurantID int) ([]byte, error)
}

// Service contracts consumed by the HTTP layer.

type FeedServiceInterface interface {
	Build(ctx context.Context, req domain.FeedRequest) ([]domain.FeedItem, error)
	Search(ctx context.Context, keyword string) ([]domain.FeedItem, error)
	Nearby(ctx context.Context, reference domain.Coordinates) ([]domain.FeedItem, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *domain.Review) error
	ListForSubject(ctx context.Context, subjectType domain.SubjectType, subjectID int) ([]domain.Review, error)
	Summary(ctx context.Context, subjectType domain.SubjectType, subjectID int) (domain.RatingSummary, error)
}

type FavoriteServiceInterface interface {
	Toggle(ctx context.Context, userID int, subjectType domain.SubjectType, subjectID int) (bool, error)
	ListForUser(ctx context.Context, userID int) ([]domain.FeedItem, error)
}

type EngagementServiceInterface interface {
	Record(ctx context.Context, menuItemID, userID int) error
	Trending(ctx context.Context, limit int) ([]domain.FeedItem, error)
}

type LocationServiceInterface interface {
	Resolve(ctx context.Context, text string) (*domain.ResolvedLocation, error)
	ReverseLookup(ctx context.Context, lat, lon float64) (string, error)
	Autocomplete(ctx context.Context, partial string) ([]domain.ResolvedLocation, error)
	UpdateUserLocation(ctx context.Context, userID int, address string, coords *domain.Coordinates) (*domain.UserLocation, error)
	ReferencePoint(ctx context.Context, userID int, explicit *domain.Coordinates) domain.Coordinates
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID int) ([]domain.FeedItem, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ShareQR(ctx context.Context, restaurantID int) ([]byte, error)
}
