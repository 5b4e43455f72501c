package service

import (
	"context"
	"testing"
	"time"

	"strength-coach-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

func newBusHarness(t *testing.T) (IPublisherService, *fakeDispatcher) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	dispatcher := &fakeDispatcher{}
	consumer := NewConsumerService(pubSub, "survey.completed.test", dispatcher, nopLogger{})
	if err := consumer.Consume(context.Background()); err != nil {
		t.Fatalf("consume: %v", err)
	}
	return NewPublisherService(pubSub, "survey.completed.test"), dispatcher
}

func TestCompletionEventRoundTripsToCongratulation(t *testing.T) {
	publisher, dispatcher := newBusHarness(t)

	evt := events.SurveyCompleted{
		ChatID:       "chat-77",
		DisplayName:  "Dana",
		TopStrengths: []string{"creative", "social", "discipline"},
		Scores:       map[string]float64{"creative": 4.8},
		CompletedAt:  time.Now(),
	}
	assert.NoError(t, publisher.Publish(context.Background(), evt))

	assert.Eventually(t, func() bool {
		dispatcher.mu.Lock()
		defer dispatcher.mu.Unlock()
		return len(dispatcher.deliveries) == 1
	}, 2*time.Second, 10*time.Millisecond)

	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	got := dispatcher.deliveries[0]
	assert.Equal(t, "chat-77", got.chatID)
	assert.Contains(t, got.text, "Dana")
	assert.Contains(t, got.text, "creative, social, discipline")
}

func TestCongratulationTextFallsBackWithoutNameOrStrengths(t *testing.T) {
	text := congratulationText(events.SurveyCompleted{ChatID: "chat-78"})
	assert.Contains(t, text, "there")
	assert.NotContains(t, text, "top strengths")
}
