package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

// ErrEmptyKeyword distinguishes "no search" from "search with no
// matches"; an empty or whitespace-only keyword is rejected before any
// boundary call.
var ErrEmptyKeyword = errors.New("search keyword is empty")

// MatchSearch performs a case-insensitive substring match of the
// keyword against menu item and restaurant names. Matched menu items
// come first as one block, each carrying its owning restaurant's name,
// followed by matched restaurants; both blocks are name-ascending.
// An empty keyword matches nothing.
func MatchSearch(keyword string, restaurants []domain.Restaurant, items []domain.MenuItem) []domain.FeedItem {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}

	names := restaurantNames(restaurants)

	var matchedItems []domain.MenuItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matchedItems = append(matchedItems, item)
		}
	}
	sort.SliceStable(matchedItems, func(i, j int) bool {
		if matchedItems[i].Name != matchedItems[j].Name {
			return matchedItems[i].Name < matchedItems[j].Name
		}
		return matchedItems[i].ID < matchedItems[j].ID
	})

	var matchedRestaurants []domain.Restaurant
	for _, restaurant := range restaurants {
		if strings.Contains(strings.ToLower(restaurant.Name), needle) {
			matchedRestaurants = append(matchedRestaurants, restaurant)
		}
	}
	sort.SliceStable(matchedRestaurants, func(i, j int) bool {
		if matchedRestaurants[i].Name != matchedRestaurants[j].Name {
			return matchedRestaurants[i].Name < matchedRestaurants[j].Name
		}
		return matchedRestaurants[i].ID < matchedRestaurants[j].ID
	})

	results := make([]domain.FeedItem, 0, len(matchedItems)+len(matchedRestaurants))
	for i := range matchedItems {
		item := matchedItems[i]
		results = append(results, domain.FeedItem{
			Kind:           domain.SubjectMenuItem,
			MenuItem:       &item,
			RestaurantName: names[item.RestaurantID],
		})
	}
	for i := range matchedRestaurants {
		restaurant := matchedRestaurants[i]
		results = append(results, domain.FeedItem{
			Kind:       domain.SubjectRestaurant,
			Restaurant: &restaurant,
		})
	}
	return results
}
