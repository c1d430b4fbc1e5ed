package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/api/http"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/geocode"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/mocks"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	feed       *mocks.FeedServiceInterface
	reviews    *mocks.ReviewServiceInterface
	favorites  *mocks.FavoriteServiceInterface
	catalog    *mocks.CatalogServiceInterface
	location   *mocks.LocationServiceInterface
	engagement *mocks.EngagementServiceInterface
}

func setupTestRouter(t *testing.T) (handlerMocks, *mux.Router) {
	m := handlerMocks{
		feed:       mocks.NewFeedServiceInterface(t),
		reviews:    mocks.NewReviewServiceInterface(t),
		favorites:  mocks.NewFavoriteServiceInterface(t),
		catalog:    mocks.NewCatalogServiceInterface(t),
		location:   mocks.NewLocationServiceInterface(t),
		engagement: mocks.NewEngagementServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Feed:       m.feed,
		Reviews:    m.reviews,
		Favorites:  m.favorites,
		Catalog:    m.catalog,
		Location:   m.location,
		Engagement: m.engagement,
	}
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return m, router
}

func TestHandler_getFeed(t *testing.T) {
	m, router := setupTestRouter(t)

	tests := []struct {
		name         string
		url          string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			url:  "/api/feed?user_id=7&category=dessert",
			prepareMocks: func() {
				m.feed.On("Build", mock.Anything, domain.FeedRequest{UserID: 7, Category: "dessert"}).
					Return([]domain.FeedItem{{Kind: domain.SubjectMenuItem, MenuItem: &domain.MenuItem{ID: 2, Name: "Halo-Halo"}}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"Halo-Halo"`,
		},
		{
			name: "superseded_request",
			url:  "/api/feed",
			prepareMocks: func() {
				m.feed.On("Build", mock.Anything, mock.Anything).
					Return(nil, service.ErrStaleRequest).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "store_failure_surfaces_empty_state",
			url:  "/api/feed",
			prepareMocks: func() {
				m.feed.On("Build", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `"items":[]`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("GET", testCase.url, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_search(t *testing.T) {
	m, router := setupTestRouter(t)

	m.feed.On("Search", mock.Anything, "").Return(nil, service.ErrEmptyKeyword).Once()

	req := httptest.NewRequest("GET", "/api/search", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_createReview(t *testing.T) {
	m, router := setupTestRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"subject_type":"menu_item","subject_id":1,"author_id":7,"rating":4.5,"body":"Great!"}`,
			prepareMocks: func() {
				m.reviews.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "invalid_rating",
			payload: `{"subject_type":"menu_item","subject_id":1,"author_id":7,"rating":4.3}`,
			prepareMocks: func() {
				m.reviews.On("Create", mock.Anything, mock.Anything).
					Return(service.ErrInvalidRating).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "duplicate",
			payload: `{"subject_type":"menu_item","subject_id":1,"author_id":7,"rating":4.5}`,
			prepareMocks: func() {
				m.reviews.On("Create", mock.Anything, mock.Anything).
					Return(service.ErrDuplicateReview).Once()
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/reviews", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getSubjectReviews(t *testing.T) {
	m, router := setupTestRouter(t)

	m.reviews.On("ListForSubject", mock.Anything, domain.SubjectRestaurant, 1).
		Return([]domain.Review{{ID: 1, Rating: 4}}, nil).Once()
	m.reviews.On("Summary", mock.Anything, domain.SubjectRestaurant, 1).
		Return(domain.RatingSummary{Average: 4, Count: 1, Histogram: [5]int{0, 0, 0, 1, 0}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/1/reviews", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body struct {
		Summary domain.RatingSummary `json:"summary"`
		Stars   []domain.Star        `json:"stars"`
		Reviews []domain.Review      `json:"reviews"`
	}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, 1, body.Summary.Count)
	assert.Len(t, body.Stars, 5)
	assert.Len(t, body.Reviews, 1)
}

func TestHandler_toggleFavorite(t *testing.T) {
	m, router := setupTestRouter(t)

	m.favorites.On("Toggle", mock.Anything, 7, domain.SubjectRestaurant, 1).
		Return(true, nil).Once()

	payload := `{"user_id":7,"subject_type":"restaurant","subject_id":1}`
	req := httptest.NewRequest("POST", "/api/favorites/toggle", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"favorited":true`)
}

func TestHandler_recordEngagement(t *testing.T) {
	m, router := setupTestRouter(t)

	m.engagement.On("Record", mock.Anything, 3, 7).Return(nil).Once()

	req := httptest.NewRequest("POST", "/api/menu-items/3/engagement?user_id=7", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusAccepted, recorder.Code)
}

func TestHandler_getRestaurant(t *testing.T) {
	m, router := setupTestRouter(t)

	m.catalog.On("GetRestaurant", mock.Anything, 99).
		Return(nil, service.ErrRestaurantNotFound).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/99", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_nonNumericPathID(t *testing.T) {
	_, router := setupTestRouter(t)

	// Bad path IDs are rejected up front; no service call is made.
	urls := []struct {
		method string
		url    string
	}{
		{"GET", "/api/restaurants/abc"},
		{"GET", "/api/restaurants/abc/menu"},
		{"GET", "/api/restaurants/abc/qrcode"},
		{"GET", "/api/restaurants/abc/reviews"},
		{"POST", "/api/menu-items/abc/engagement"},
		{"GET", "/api/users/abc/favorites"},
	}
	for _, testCase := range urls {
		req := httptest.NewRequest(testCase.method, testCase.url, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, testCase.url)
	}
}

func TestHandler_getRestaurantQRCode(t *testing.T) {
	m, router := setupTestRouter(t)

	m.catalog.On("ShareQR", mock.Anything, 1).
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/1/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestHandler_geocodeErrors(t *testing.T) {
	m, router := setupTestRouter(t)

	m.location.On("Resolve", mock.Anything, "nowhere").
		Return(nil, geocode.ErrNotFound).Once()
	req := httptest.NewRequest("GET", "/api/location/resolve?q=nowhere", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	m.location.On("Resolve", mock.Anything, "anywhere").
		Return(nil, geocode.ErrUnavailable).Once()
	req = httptest.NewRequest("GET", "/api/location/resolve?q=anywhere", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestHandler_getNearbyRestaurants(t *testing.T) {
	m, router := setupTestRouter(t)

	reference := domain.Coordinates{Lat: 8.2280, Lon: 124.2452}
	m.location.On("ReferencePoint", mock.Anything, 7, (*domain.Coordinates)(nil)).
		Return(reference).Once()
	m.feed.On("Nearby", mock.Anything, reference).
		Return([]domain.FeedItem{}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/nearby?user_id=7", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"reference"`)
}
