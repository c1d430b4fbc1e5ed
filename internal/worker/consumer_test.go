package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/mocks"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		event          domain.EngagementEvent
		setupMockStore func(*mocks.Store)
	}{
		{
			name:  "menu_engagement_increments_score",
			event: domain.EngagementEvent{Type: domain.EventMenuEngagement, MenuItemID: 3, UserID: 7},
			setupMockStore: func(store *mocks.Store) {
				store.On("ApplyEngagement", ctx, 3).Return(nil).Once()
			},
		},
		{
			name:  "menu_engagement_store_error_is_swallowed",
			event: domain.EngagementEvent{Type: domain.EventMenuEngagement, MenuItemID: 3},
			setupMockStore: func(store *mocks.Store) {
				store.On("ApplyEngagement", ctx, 3).Return(errors.New("db connection failed")).Once()
			},
		},
		{
			name: "new_review_refreshes_aggregates",
			event: domain.EngagementEvent{
				Type: domain.EventNewReview, SubjectType: domain.SubjectRestaurant, SubjectID: 1, Rating: 4.5,
			},
			setupMockStore: func(store *mocks.Store) {
				store.On("RefreshRatingAggregates", ctx, domain.SubjectRestaurant, 1).Return(nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStore(t)
			testCase.setupMockStore(store)

			consumer := &Consumer{Store: store}
			consumer.ProcessEvent(ctx, testCase.event)
		})
	}
}

func TestConsumer_UnknownEventType(t *testing.T) {
	store := mocks.NewStore(t)
	consumer := &Consumer{Store: store}

	consumer.ProcessEvent(context.Background(), domain.EngagementEvent{Type: "page_scroll"})

	store.AssertNotCalled(t, "ApplyEngagement")
	store.AssertNotCalled(t, "RefreshRatingAggregates")
}
