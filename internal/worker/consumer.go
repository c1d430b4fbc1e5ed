// Package worker consumes the engagement event stream and applies the
// resulting writes, keeping the read path free of write amplification.
package worker

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

type Store interface {
	ApplyEngagement(ctx context.Context, menuItemID int) error
	RefreshRatingAggregates(ctx context.Context, subjectType domain.SubjectType, subjectID int) error
}

type Consumer struct {
	Reader *kafka.Reader
	Store  Store
}

func NewConsumer(reader *kafka.Reader, store Store) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Close() error {
	return c.Reader.Close()
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting engagement consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.EngagementEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling event: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.EngagementEvent) {
	switch event.Type {
	case domain.EventMenuEngagement:
		if err := c.Store.ApplyEngagement(ctx, event.MenuItemID); err != nil {
			log.Printf("Error applying engagement for item %d: %v", event.MenuItemID, err)
		}
	case domain.EventNewReview:
		if err := c.Store.RefreshRatingAggregates(ctx, event.SubjectType, event.SubjectID); err != nil {
			log.Printf("Error refreshing rating aggregates for %s %d: %v",
				event.SubjectType, event.SubjectID, err)
		}
	default:
		log.Printf("Skipping unknown event type %q", event.Type)
	}
}
