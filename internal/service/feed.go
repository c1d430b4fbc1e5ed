package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

// ErrStaleRequest marks a feed response that was superseded by a newer
// request (user changed category or keyword mid-flight); the caller
// discards it rather than rendering stale data.
var ErrStaleRequest = errors.New("feed request superseded")

// FeedService composes the ranking strategies into the single ordered,
// rating-annotated list a page renders. Strategy precedence: keyword,
// then category, then reference point, then the default engagement
// feed.
type FeedService struct {
	catalog CatalogRepository
	reviews ReviewRepository

	// Supersession is scoped per user: a newer request only invalidates
	// an in-flight one from the same user. Anonymous requests carry no
	// session identity and never supersede each other.
	mu          sync.Mutex
	generations map[int]uint64
}

func NewFeedService(catalog CatalogRepository, reviews ReviewRepository) *FeedService {
	return &FeedService{
		catalog:     catalog,
		reviews:     reviews,
		generations: make(map[int]uint64),
	}
}

func (s *FeedService) nextGeneration(userID int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[userID]++
	return s.generations[userID]
}

func (s *FeedService) currentGeneration(userID int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[userID]
}

func (s *FeedService) Build(ctx context.Context, req domain.FeedRequest) ([]domain.FeedItem, error) {
	var generation uint64
	if req.UserID != 0 {
		generation = s.nextGeneration(req.UserID)
	}

	// The three boundary fetches run concurrently but ranking waits
	// for all of them; partial data is never ranked.
	var (
		wg          sync.WaitGroup
		restaurants []domain.Restaurant
		items       []domain.MenuItem
		reviews     []domain.Review
		fetchErrs   [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		restaurants, fetchErrs[0] = s.catalog.ListRestaurants(ctx)
	}()
	go func() {
		defer wg.Done()
		items, fetchErrs[1] = s.catalog.ListAllMenuItems(ctx)
	}()
	go func() {
		defer wg.Done()
		var menuReviews, restaurantReviews []domain.Review
		menuReviews, fetchErrs[2] = s.reviews.ListByKind(ctx, domain.SubjectMenuItem)
		if fetchErrs[2] != nil {
			return
		}
		restaurantReviews, fetchErrs[2] = s.reviews.ListByKind(ctx, domain.SubjectRestaurant)
		reviews = append(menuReviews, restaurantReviews...)
	}()
	wg.Wait()

	for _, err := range fetchErrs {
		if err != nil {
			return nil, fmt.Errorf("feed fetch: %w", err)
		}
	}

	// A newer request from the same user has taken over; drop this
	// response.
	if req.UserID != 0 && s.currentGeneration(req.UserID) != generation {
		return nil, ErrStaleRequest
	}

	summaries := SummarizeBySubject(reviews)
	names := restaurantNames(restaurants)

	var results []domain.FeedItem
	switch {
	case strings.TrimSpace(req.Keyword) != "":
		results = MatchSearch(req.Keyword, restaurants, items)
	case req.Category != "":
		results = menuFeed(RankByEngagement(items, req.Category), names)
	case req.ReferencePoint != nil:
		results = proximityFeed(RankByProximity(*req.ReferencePoint, restaurants))
	default:
		results = menuFeed(RankByEngagement(items, ""), names)
	}

	annotate(results, summaries)
	return results, nil
}

// Search is the keyword path on its own; an empty keyword is rejected
// here, before any store query.
func (s *FeedService) Search(ctx context.Context, keyword string) ([]domain.FeedItem, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, ErrEmptyKeyword
	}
	return s.Build(ctx, domain.FeedRequest{Keyword: keyword})
}

// Nearby is the proximity path on its own, for the nearby-restaurants
// page.
func (s *FeedService) Nearby(ctx context.Context, reference domain.Coordinates) ([]domain.FeedItem, error) {
	return s.Build(ctx, domain.FeedRequest{ReferencePoint: &reference})
}

func menuFeed(items []domain.MenuItem, names map[int]string) []domain.FeedItem {
	results := make([]domain.FeedItem, 0, len(items))
	for i := range items {
		item := items[i]
		results = append(results, domain.FeedItem{
			Kind:           domain.SubjectMenuItem,
			MenuItem:       &item,
			RestaurantName: names[item.RestaurantID],
		})
	}
	return results
}

func proximityFeed(ranked []RankedRestaurant) []domain.FeedItem {
	results := make([]domain.FeedItem, 0, len(ranked))
	for i := range ranked {
		entry := ranked[i]
		results = append(results, domain.FeedItem{
			Kind:       domain.SubjectRestaurant,
			Restaurant: &entry.Restaurant,
			DistanceKm: entry.DistanceKm,
		})
	}
	return results
}

func annotate(results []domain.FeedItem, summaries map[domain.SubjectKey]domain.RatingSummary) {
	for i := range results {
		switch results[i].Kind {
		case domain.SubjectMenuItem:
			results[i].Rating = summaries[domain.SubjectKey{Type: domain.SubjectMenuItem, ID: results[i].MenuItem.ID}]
		case domain.SubjectRestaurant:
			results[i].Rating = summaries[domain.SubjectKey{Type: domain.SubjectRestaurant, ID: results[i].Restaurant.ID}]
		}
	}
}

var _ FeedServiceInterface = (*FeedService)(nil)
