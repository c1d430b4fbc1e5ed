package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.EngagementEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := event.MenuItemID
	if key == 0 {
		key = event.SubjectID
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(key)),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.Writer.Close()
}
