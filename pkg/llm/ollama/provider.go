package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"strength-coach-be/pkg/llm"
)

type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

// Ensure OllamaProvider implements LLMProvider
var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	return &OllamaProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			// Hard ceiling; callers usually pass a much shorter context
			// deadline and that one wins.
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// --- Interface Implementation ---

func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := applyOptions(opts)

	messages := make([]ollamaMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, ollamaMessage{Role: mapRole(m.Role), Content: m.Content})
	}

	reqBody := ollamaChatRequest{
		Model:    o.ModelName,
		Messages: messages,
		Stream:   false,
		Options:  toOllamaOptions(options),
	}

	var resp ollamaChatResponse
	if err := o.post(ctx, "/api/chat", reqBody, &resp); err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}

// --- Helpers ---

func (o *OllamaProvider) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("ollama: unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ollama: decode response: %w", err)
	}
	return nil
}

func applyOptions(opts []llm.Option) llm.Options {
	var options llm.Options
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func toOllamaOptions(options llm.Options) *ollamaOptions {
	if options.Temperature == 0 && options.MaxTokens == 0 {
		return nil
	}
	return &ollamaOptions{
		Temperature: options.Temperature,
		NumPredict:  options.MaxTokens,
	}
}

// mapRole translates the provider-agnostic role names to Ollama's.
func mapRole(role string) string {
	switch role {
	case "assistant":
		return "assistant"
	case "system":
		return "system"
	default:
		return "user"
	}
}
