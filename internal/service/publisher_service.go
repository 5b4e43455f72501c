package service

import (
	"context"
	"encoding/json"
	"time"

	"strength-coach-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Message metadata keys shared between publisher and consumer.
const (
	metadataEventType  = "event_type"
	metadataOccurredAt = "occurred_at"
)

type IPublisherService interface {
	Publish(ctx context.Context, evt events.Event) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (s *publisherService) Publish(ctx context.Context, evt events.Event) error {
	payload, err := json.Marshal(evt.Payload())
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(metadataEventType, evt.EventType())
	msg.Metadata.Set(metadataOccurredAt, evt.Timestamp().Format(time.RFC3339))
	return s.pubSub.Publish(s.topicName, msg)
}
