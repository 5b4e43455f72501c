package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"strength-coach-be/internal/pkg/dispatch"
	"strength-coach-be/internal/pkg/logger"
	"strength-coach-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService turns completion events into a congratulation message to
// the user. Every message is acked regardless of delivery outcome: this
// channel is best effort and must never build a retry backlog.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	dispatcher dispatch.Dispatcher
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	dispatcher dispatch.Dispatcher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		dispatcher: dispatcher,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	if typ := msg.Metadata.Get(metadataEventType); typ != events.TypeSurveyCompleted {
		cs.logger.Warn("consumer", "unexpected event type dropped", map[string]interface{}{
			"event_type": typ,
		})
		return
	}

	var evt events.SurveyCompleted
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("consumer", "unreadable completion event dropped", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	text := congratulationText(evt)
	if err := cs.dispatcher.Deliver(ctx, evt.ChatID, text); err != nil {
		cs.logger.Warn("consumer", "congratulation not delivered", map[string]interface{}{
			"chat_id": evt.ChatID,
			"error":   err.Error(),
		})
		return
	}

	cs.logger.Info("consumer", "congratulation delivered", map[string]interface{}{
		"chat_id": evt.ChatID,
	})
}

func congratulationText(evt events.SurveyCompleted) string {
	name := evt.DisplayName
	if name == "" {
		name = "there"
	}
	if len(evt.TopStrengths) == 0 {
		return fmt.Sprintf("Well done, %s! Your assessment is complete.", name)
	}
	return fmt.Sprintf("Well done, %s! Your assessment is complete. Your top strengths: %s.",
		name, strings.Join(evt.TopStrengths, ", "))
}
