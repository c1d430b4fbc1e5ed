// Package geocode is the adapter for the external geocoding
// collaborator. The service is rate-limited and occasionally down, so
// every failure is converted to a typed outcome callers can fall back
// from instead of crashing the request.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

var (
	ErrNotFound    = errors.New("geocode: no result for query")
	ErrUnavailable = errors.New("geocode: service unavailable")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// place is the wire shape of a single geocoder candidate. Coordinates
// arrive as strings.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Forward resolves free-text into coordinates and a canonical address.
// A single attempt, no retries: callers fall back to a last-known or
// default point on ErrNotFound/ErrUnavailable.
func (c *Client) Forward(ctx context.Context, text string) (*domain.ResolvedLocation, error) {
	if text == "" {
		return nil, ErrNotFound
	}

	candidates, err := c.search(ctx, text, 1)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}
	return &candidates[0], nil
}

// Reverse resolves coordinates into a canonical address.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("format", "json")

	var result place
	if err := c.getJSON(ctx, "/reverse", query, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", ErrNotFound
	}
	return result.DisplayName, nil
}

// Autocomplete returns up to five ordered candidates for a partial
// address, for the editable location field.
func (c *Client) Autocomplete(ctx context.Context, partial string) ([]domain.ResolvedLocation, error) {
	if partial == "" {
		return nil, nil
	}
	return c.search(ctx, partial, 5)
}

func (c *Client) search(ctx context.Context, text string, limit int) ([]domain.ResolvedLocation, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("format", "json")
	query.Set("limit", strconv.Itoa(limit))

	var results []place
	if err := c.getJSON(ctx, "/search", query, &results); err != nil {
		return nil, err
	}

	resolved := make([]domain.ResolvedLocation, 0, len(results))
	for _, p := range results {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lon, lonErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		resolved = append(resolved, domain.ResolvedLocation{
			Coordinates: domain.Coordinates{Lat: lat, Lon: lon},
			Address:     p.DisplayName,
		})
	}
	return resolved, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("geocode: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}
