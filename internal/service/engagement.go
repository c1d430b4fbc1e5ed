package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

// RankByEngagement orders menu items by descending engagement score,
// optionally restricted to items carrying the category tag. Ties
// break on ID.
func RankByEngagement(items []domain.MenuItem, category string) []domain.MenuItem {
	ranked := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && !item.Tagged(category) {
			continue
		}
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].EngagementScore != ranked[j].EngagementScore {
			return ranked[i].EngagementScore > ranked[j].EngagementScore
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

type EngagementService struct {
	publisher   EventPublisher
	leaderboard EngagementLeaderboard
	catalog     CatalogRepository
	reviews     ReviewRepository
}

func NewEngagementService(
	publisher EventPublisher,
	leaderboard EngagementLeaderboard,
	catalog CatalogRepository,
	reviews ReviewRepository,
) *EngagementService {
	return &EngagementService{
		publisher:   publisher,
		leaderboard: leaderboard,
		catalog:     catalog,
		reviews:     reviews,
	}
}

// Record emits a +1 engagement event for a detail-page open. The
// increment itself is applied atomically by the consumer. Navigation never
// waits on the publish, and a publish failure is logged, not surfaced.
func (s *EngagementService) Record(ctx context.Context, menuItemID, userID int) error {
	if s.publisher == nil {
		return nil
	}
	event := domain.EngagementEvent{
		Type:       domain.EventMenuEngagement,
		MenuItemID: menuItemID,
		UserID:     userID,
		Timestamp:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[engagement] failed to publish event for menu item %d: %v", menuItemID, err)
	}
	return nil
}

// Trending returns the most-opened menu items, read from the redis
// leaderboard with a catalog fallback when the leaderboard is empty or
// unreachable.
func (s *EngagementService) Trending(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	if limit <= 0 {
		limit = 10
	}

	entries, err := s.leaderboard.Top(ctx, int64(limit))
	if err != nil || len(entries) == 0 {
		return s.trendingFromCatalog(ctx, limit)
	}

	reviews, err := s.reviews.ListByKind(ctx, domain.SubjectMenuItem)
	if err != nil {
		return nil, fmt.Errorf("fetch menu item reviews: %w", err)
	}
	summaries := SummarizeBySubject(reviews)

	items := make([]domain.FeedItem, 0, len(entries))
	for _, entry := range entries {
		item, err := s.catalog.GetMenuItem(ctx, entry.MenuItemID)
		if err != nil {
			continue
		}
		feedItem := domain.FeedItem{
			Kind:     domain.SubjectMenuItem,
			MenuItem: item,
			Rating:   summaries[domain.SubjectKey{Type: domain.SubjectMenuItem, ID: item.ID}],
		}
		if owner, err := s.catalog.GetRestaurant(ctx, item.RestaurantID); err == nil {
			feedItem.RestaurantName = owner.Name
		}
		items = append(items, feedItem)
	}
	return items, nil
}

func (s *EngagementService) trendingFromCatalog(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	all, err := s.catalog.ListAllMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch menu items: %w", err)
	}
	restaurants, err := s.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch restaurants: %w", err)
	}
	reviews, err := s.reviews.ListByKind(ctx, domain.SubjectMenuItem)
	if err != nil {
		return nil, fmt.Errorf("fetch menu item reviews: %w", err)
	}

	names := restaurantNames(restaurants)
	summaries := SummarizeBySubject(reviews)

	ranked := RankByEngagement(all, "")
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	items := make([]domain.FeedItem, 0, len(ranked))
	for i := range ranked {
		item := ranked[i]
		items = append(items, domain.FeedItem{
			Kind:           domain.SubjectMenuItem,
			MenuItem:       &item,
			RestaurantName: names[item.RestaurantID],
			Rating:         summaries[domain.SubjectKey{Type: domain.SubjectMenuItem, ID: item.ID}],
		})
	}
	return items, nil
}

func restaurantNames(restaurants []domain.Restaurant) map[int]string {
	names := make(map[int]string, len(restaurants))
	for _, restaurant := range restaurants {
		names[restaurant.ID] = restaurant.Name
	}
	return names
}

var _ EngagementServiceInterface = (*EngagementService)(nil)
