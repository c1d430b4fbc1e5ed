package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/geocode"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/service"
)

type Handler struct {
	Feed       service.FeedServiceInterface
	Reviews    service.ReviewServiceInterface
	Favorites  service.FavoriteServiceInterface
	Catalog    service.CatalogServiceInterface
	Location   service.LocationServiceInterface
	Engagement service.EngagementServiceInterface
}

func NewHandler(
	feed service.FeedServiceInterface,
	reviews service.ReviewServiceInterface,
	favorites service.FavoriteServiceInterface,
	catalog service.CatalogServiceInterface,
	location service.LocationServiceInterface,
	engagement service.EngagementServiceInterface,
) *Handler {
	return &Handler{
		Feed:       feed,
		Reviews:    reviews,
		Favorites:  favorites,
		Catalog:    catalog,
		Location:   location,
		Engagement: engagement,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/feed", h.getFeed).Methods("GET")
	r.HandleFunc("/api/search", h.search).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/nearby", h.getNearbyRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getRestaurantMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/reviews", h.getSubjectReviews(domain.SubjectRestaurant)).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")

	r.HandleFunc("/api/menu-items/trending", h.getTrending).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}/engagement", h.recordEngagement).Methods("POST")
	r.HandleFunc("/api/menu-items/{id}/reviews", h.getSubjectReviews(domain.SubjectMenuItem)).Methods("GET")

	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")

	r.HandleFunc("/api/favorites/toggle", h.toggleFavorite).Methods("POST")
	r.HandleFunc("/api/users/{id}/favorites", h.getUserFavorites).Methods("GET")

	r.HandleFunc("/api/location/resolve", h.resolveLocation).Methods("GET")
	r.HandleFunc("/api/location/reverse", h.reverseLocation).Methods("GET")
	r.HandleFunc("/api/location/autocomplete", h.autocompleteLocation).Methods("GET")
	r.HandleFunc("/api/users/{id}/location", h.updateUserLocation).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "foodie-finder",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := domain.FeedRequest{
		Category: query.Get("category"),
		Keyword:  query.Get("q"),
	}
	if userID, err := strconv.Atoi(query.Get("user_id")); err == nil {
		req.UserID = userID
	}
	if point, ok := parseCoordinates(query.Get("lat"), query.Get("lon")); ok {
		req.ReferencePoint = &point
	}

	items, err := h.Feed.Build(r.Context(), req)
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	items, err := h.Feed.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, service.ErrEmptyKeyword) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getNearbyRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var explicit *domain.Coordinates
	if point, ok := parseCoordinates(query.Get("lat"), query.Get("lon")); ok {
		explicit = &point
	}
	userID, _ := strconv.Atoi(query.Get("user_id"))

	// Explicit coordinates win, then the stored last-known location,
	// then the city-center default.
	reference := h.Location.ReferencePoint(r.Context(), userID, explicit)

	items, err := h.Feed.Nearby(r.Context(), reference)
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reference": reference,
		"items":     items,
	})
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	restaurant, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	items, err := h.Catalog.ListMenu(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	qrCode, err := h.Catalog.ShareQR(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getTrending(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.Engagement.Trending(r.Context(), limit)
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) recordEngagement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	userID, _ := strconv.Atoi(r.URL.Query().Get("user_id"))

	// Fire-and-forget: navigation does not wait for the increment.
	if err := h.Engagement.Record(r.Context(), id, userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) getSubjectReviews(subjectType domain.SubjectType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		reviews, err := h.Reviews.ListForSubject(r.Context(), subjectType, id)
		if err != nil {
			h.writeReadError(w, err)
			return
		}
		summary, err := h.Reviews.Summary(r.Context(), subjectType, id)
		if err != nil {
			h.writeReadError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"summary": summary,
			"stars":   service.Stars(summary.Average),
			"reviews": reviews,
		})
	}
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Reviews.Create(r.Context(), &review); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrUnknownSubject):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrDuplicateReview):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID      int                `json:"user_id"`
		SubjectType domain.SubjectType `json:"subject_type"`
		SubjectID   int                `json:"subject_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	favorited, err := h.Favorites.Toggle(r.Context(), payload.UserID, payload.SubjectType, payload.SubjectID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownSubject) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"favorited": favorited})
}

func (h *Handler) getUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	items, err := h.Favorites.ListForUser(r.Context(), userID)
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) resolveLocation(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.Location.Resolve(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeGeocodeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

func (h *Handler) reverseLocation(w http.ResponseWriter, r *http.Request) {
	point, ok := parseCoordinates(r.URL.Query().Get("lat"), r.URL.Query().Get("lon"))
	if !ok {
		http.Error(w, "lat and lon are required", http.StatusBadRequest)
		return
	}

	address, err := h.Location.ReverseLookup(r.Context(), point.Lat, point.Lon)
	if err != nil {
		h.writeGeocodeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"address": address})
}

func (h *Handler) autocompleteLocation(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.Location.Autocomplete(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeGeocodeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"candidates": candidates})
}

func (h *Handler) updateUserLocation(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Address string   `json:"address"`
		Lat     *float64 `json:"lat"`
		Lon     *float64 `json:"lon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	var coords *domain.Coordinates
	if payload.Lat != nil && payload.Lon != nil {
		coords = &domain.Coordinates{Lat: *payload.Lat, Lon: *payload.Lon}
	}

	location, err := h.Location.UpdateUserLocation(r.Context(), userID, payload.Address, coords)
	if err != nil {
		if errors.Is(err, service.ErrEmptyAddress) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeGeocodeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, location)
}

// writeReadError keeps read paths crash-free: a stale feed response is
// reported as a conflict, anything else surfaces as an empty-state 503.
func (h *Handler) writeReadError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrStaleRequest) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
		"items": []interface{}{},
		"error": "temporarily unavailable",
	})
}

func (h *Handler) writeGeocodeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, geocode.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, geocode.ErrUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// pathID parses a numeric path segment; callers reject the request
// with a 400 when the segment is not a number.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

func parseCoordinates(latText, lonText string) (domain.Coordinates, bool) {
	if latText == "" || lonText == "" {
		return domain.Coordinates{}, false
	}
	lat, latErr := strconv.ParseFloat(latText, 64)
	lon, lonErr := strconv.ParseFloat(lonText, 64)
	if latErr != nil || lonErr != nil {
		return domain.Coordinates{}, false
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
