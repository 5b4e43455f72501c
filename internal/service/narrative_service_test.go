package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"strength-coach-be/internal/scoring"
	"strength-coach-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type fakeChatProvider struct {
	history []llm.Message
	reply   string
	fail    error
}

func (p *fakeChatProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	p.history = history
	if p.fail != nil {
		return "", p.fail
	}
	return p.reply, nil
}

func sampleResult() scoring.Result {
	return scoring.Result{
		Scores: map[string]float64{"creative": 4.5, "social": 3.0},
		Top:    []string{"creative", "social"},
	}
}

func TestComposeSendsPersonaAndResultToModel(t *testing.T) {
	provider := &fakeChatProvider{reply: "  You shine at creative work.  "}
	svc := NewNarrativeService(provider, time.Second, nopLogger{})

	got := svc.Compose(context.Background(), "Dana", sampleResult(), map[string]string{"demo_age": "34"})

	if assert.NotNil(t, got) {
		assert.Equal(t, "You shine at creative work.", *got)
	}
	if assert.Len(t, provider.history, 2) {
		assert.Equal(t, "system", provider.history[0].Role)
		assert.Equal(t, "user", provider.history[1].Role)
		assert.Contains(t, provider.history[1].Content, "Dana")
		assert.Contains(t, provider.history[1].Content, "creative")
		assert.Contains(t, provider.history[1].Content, "age: 34")
	}
}

func TestComposeDegradesToNilOnModelFailure(t *testing.T) {
	provider := &fakeChatProvider{fail: fmt.Errorf("model offline")}
	svc := NewNarrativeService(provider, time.Second, nopLogger{})

	assert.Nil(t, svc.Compose(context.Background(), "Dana", sampleResult(), nil))
}

func TestComposeWithoutProviderReturnsNil(t *testing.T) {
	svc := NewNarrativeService(nil, time.Second, nopLogger{})
	assert.Nil(t, svc.Compose(context.Background(), "Dana", sampleResult(), nil))
}

func TestComposeDropsBlankModelOutput(t *testing.T) {
	provider := &fakeChatProvider{reply: "   \n"}
	svc := NewNarrativeService(provider, time.Second, nopLogger{})

	assert.Nil(t, svc.Compose(context.Background(), "Dana", sampleResult(), nil))
}
