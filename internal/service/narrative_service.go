package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"strength-coach-be/internal/pkg/logger"
	"strength-coach-be/internal/scoring"
	"strength-coach-be/pkg/llm"
)

type INarrativeService interface {
	// Compose asks the language model for a short personal summary of the
	// scoring result. It returns nil when generation fails or the deadline
	// passes; the profile is stored without a narrative in that case.
	Compose(ctx context.Context, displayName string, result scoring.Result, demographic map[string]string) *string
}

type narrativeService struct {
	provider llm.LLMProvider
	timeout  time.Duration
	logger   logger.ILogger
}

func NewNarrativeService(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) INarrativeService {
	return &narrativeService{
		provider: provider,
		timeout:  timeout,
		logger:   log,
	}
}

func (s *narrativeService) Compose(ctx context.Context, displayName string, result scoring.Result, demographic map[string]string) *string {
	if s.provider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	history := []llm.Message{
		{Role: "system", Content: narrativeSystemPrompt},
		{Role: "user", Content: s.buildPrompt(displayName, result, demographic)},
	}
	text, err := s.provider.Chat(ctx, history,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(400),
	)
	if err != nil {
		s.logger.Warn("narrative", "generation failed, storing profile without narrative", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return &text
}

const narrativeSystemPrompt = "You are a supportive strengths coach. Write a short, warm summary " +
	"(3 to 5 sentences, second person, no bullet points) of the assessment result " +
	"you are given. Mention the top strengths by name and one concrete way to use " +
	"the first of them this week."

func (s *narrativeService) buildPrompt(displayName string, result scoring.Result, demographic map[string]string) string {
	var b strings.Builder

	if displayName != "" {
		fmt.Fprintf(&b, "Name: %s\n", displayName)
	}
	for _, field := range []string{"demo_age", "demo_occupation"} {
		if v, ok := demographic[field]; ok && v != "" {
			fmt.Fprintf(&b, "%s: %s\n", strings.TrimPrefix(field, "demo_"), v)
		}
	}

	b.WriteString("\nCategory scores (1 to 5):\n")
	categories := make([]string, 0, len(result.Scores))
	for category := range result.Scores {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(&b, "- %s: %.1f\n", category, result.Scores[category])
	}

	fmt.Fprintf(&b, "\nTop strengths, best first: %s\n", strings.Join(result.Top, ", "))
	return b.String()
}
