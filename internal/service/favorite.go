package service

import (
	"context"
	"fmt"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

type FavoriteService struct {
	favorites FavoriteRepository
	catalog   CatalogRepository
	reviews   ReviewRepository
}

func NewFavoriteService(favorites FavoriteRepository, catalog CatalogRepository, reviews ReviewRepository) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		catalog:   catalog,
		reviews:   reviews,
	}
}

// Toggle flips the favorite state for (user, subject) and reports the
// new state. Rapid double taps are serialized by the store's
// uniqueness constraint, so two toggles in quick succession land on
// the opposite of the original state, never a double insert.
func (s *FavoriteService) Toggle(ctx context.Context, userID int, subjectType domain.SubjectType, subjectID int) (bool, error) {
	if !subjectType.Valid() {
		return false, ErrUnknownSubject
	}
	favorited, err := s.favorites.Toggle(ctx, userID, subjectType, subjectID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return favorited, nil
}

// ListForUser returns the user's favorites resolved to their subjects,
// each annotated with its rating summary. Favorites whose subject has
// vanished from the catalog are skipped.
func (s *FavoriteService) ListForUser(ctx context.Context, userID int) ([]domain.FeedItem, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(favorites))
	for _, favorite := range favorites {
		reviews, err := s.reviews.ListBySubject(ctx, favorite.SubjectType, favorite.SubjectID)
		if err != nil {
			return nil, fmt.Errorf("fetch reviews for favorite: %w", err)
		}
		summary := AggregateRatings(reviews)

		switch favorite.SubjectType {
		case domain.SubjectRestaurant:
			restaurant, err := s.catalog.GetRestaurant(ctx, favorite.SubjectID)
			if err != nil {
				continue
			}
			items = append(items, domain.FeedItem{
				Kind:       domain.SubjectRestaurant,
				Restaurant: restaurant,
				Rating:     summary,
			})
		case domain.SubjectMenuItem:
			item, err := s.catalog.GetMenuItem(ctx, favorite.SubjectID)
			if err != nil {
				continue
			}
			feedItem := domain.FeedItem{
				Kind:     domain.SubjectMenuItem,
				MenuItem: item,
				Rating:   summary,
			}
			if owner, err := s.catalog.GetRestaurant(ctx, item.RestaurantID); err == nil {
				feedItem.RestaurantName = owner.Name
			}
			items = append(items, feedItem)
		}
	}
	return items, nil
}

var _ FavoriteServiceInterface = (*FavoriteService)(nil)
