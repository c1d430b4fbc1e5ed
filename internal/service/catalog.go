package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type CatalogService struct {
	repo    CatalogRepository
	reviews ReviewRepository
	qr      QRGenerator
}

func NewCatalogService(repo CatalogRepository, reviews ReviewRepository, qr QRGenerator) *CatalogService {
	return &CatalogService{repo: repo, reviews: reviews, qr: qr}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	restaurant, err := s.repo.GetRestaurant(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	return restaurant, err
}

// ListMenu returns a restaurant's menu annotated with each item's
// rating summary.
func (s *CatalogService) ListMenu(ctx context.Context, restaurantID int) ([]domain.FeedItem, error) {
	restaurant, err := s.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	menu, err := s.repo.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}
	reviews, err := s.reviews.ListByKind(ctx, domain.SubjectMenuItem)
	if err != nil {
		return nil, fmt.Errorf("fetch menu reviews: %w", err)
	}
	summaries := SummarizeBySubject(reviews)

	items := make([]domain.FeedItem, 0, len(menu))
	for i := range menu {
		item := menu[i]
		items = append(items, domain.FeedItem{
			Kind:           domain.SubjectMenuItem,
			MenuItem:       &item,
			RestaurantName: restaurant.Name,
			Rating:         summaries[domain.SubjectKey{Type: domain.SubjectMenuItem, ID: item.ID}],
		})
	}
	return items, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// ShareQR renders a QR code pointing at the restaurant's public detail
// page.
func (s *CatalogService) ShareQR(ctx context.Context, restaurantID int) ([]byte, error) {
	if _, err := s.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.qr.Generate(restaurantID)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
