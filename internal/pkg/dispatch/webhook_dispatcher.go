package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebhookDispatcher posts messages to the chat-transport gateway, which owns
// the actual conversation with the user.
type WebhookDispatcher struct {
	URL    string
	Token  string
	Client *http.Client
}

var _ Dispatcher = &WebhookDispatcher{}

func NewWebhookDispatcher(url, token string) *WebhookDispatcher {
	return &WebhookDispatcher{
		URL:   url,
		Token: token,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type webhookPayload struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (d *WebhookDispatcher) Deliver(ctx context.Context, chatID string, text string) error {
	payload, err := json.Marshal(webhookPayload{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("dispatch: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("dispatch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.Token != "" {
		req.Header.Set("Authorization", "Bearer "+d.Token)
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("dispatch: gateway returned %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
