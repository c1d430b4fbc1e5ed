package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

var ErrEmptyAddress = errors.New("address text is empty")

// LocationService wraps the geocoding collaborator with the fallback
// policy: one attempt, and on NotFound/Unavailable callers fall back
// to the user's last-known location, then the fixed city-center
// default.
type LocationService struct {
	geocoder     Geocoder
	locations    LocationRepository
	defaultPoint domain.Coordinates
}

func NewLocationService(geocoder Geocoder, locations LocationRepository, defaultPoint domain.Coordinates) *LocationService {
	return &LocationService{
		geocoder:     geocoder,
		locations:    locations,
		defaultPoint: defaultPoint,
	}
}

func (s *LocationService) Resolve(ctx context.Context, text string) (*domain.ResolvedLocation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyAddress
	}
	return s.geocoder.Forward(ctx, text)
}

func (s *LocationService) ReverseLookup(ctx context.Context, lat, lon float64) (string, error) {
	return s.geocoder.Reverse(ctx, lat, lon)
}

func (s *LocationService) Autocomplete(ctx context.Context, partial string) ([]domain.ResolvedLocation, error) {
	return s.geocoder.Autocomplete(ctx, partial)
}

// UpdateUserLocation supersedes the user's last-known location. With
// coordinates given, the address is reverse-geocoded for display but a
// geocoder failure keeps the raw text rather than failing the update.
// With only free text, it must forward-geocode successfully.
func (s *LocationService) UpdateUserLocation(ctx context.Context, userID int, address string, coords *domain.Coordinates) (*domain.UserLocation, error) {
	location := domain.UserLocation{
		UserID:    userID,
		Address:   strings.TrimSpace(address),
		UpdatedAt: time.Now(),
	}

	if coords != nil {
		location.Lat = coords.Lat
		location.Lon = coords.Lon
		if canonical, err := s.geocoder.Reverse(ctx, coords.Lat, coords.Lon); err == nil {
			location.Address = canonical
		} else {
			log.Printf("[location] reverse geocode failed for user %d: %v", userID, err)
		}
	} else {
		if location.Address == "" {
			return nil, ErrEmptyAddress
		}
		resolved, err := s.geocoder.Forward(ctx, location.Address)
		if err != nil {
			return nil, err
		}
		location.Lat = resolved.Coordinates.Lat
		location.Lon = resolved.Coordinates.Lon
		location.Address = resolved.Address
	}

	if err := s.locations.Upsert(ctx, location); err != nil {
		return nil, fmt.Errorf("save user location: %w", err)
	}
	return &location, nil
}

// ReferencePoint resolves the proximity reference for a request:
// explicit coordinates win, then the stored last-known location, then
// the city-center default. It never fails.
func (s *LocationService) ReferencePoint(ctx context.Context, userID int, explicit *domain.Coordinates) domain.Coordinates {
	if explicit != nil {
		return *explicit
	}
	if saved, err := s.locations.Get(ctx, userID); err == nil && saved != nil {
		return domain.Coordinates{Lat: saved.Lat, Lon: saved.Lon}
	}
	return s.defaultPoint
}

var _ LocationServiceInterface = (*LocationService)(nil)
