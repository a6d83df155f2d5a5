package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"expense-tracko-api/internal/config"
	"expense-tracko-api/internal/ledger"
)

// Client talks to a Groq (OpenAI-compatible) chat completions endpoint.
type Client struct {
	cfg  *config.Config
	http *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: time.Duration(cfg.AITimeoutSec) * time.Second,
		},
	}
}

// Summary generates the dashboard monthly insight text.
func (c *Client) Summary(ctx context.Context, data ledger.SnapshotData) (string, error) {
	return c.chat(ctx, summaryPrompt(data))
}

// ChatReply answers a finance question grounded on the user's own data.
func (c *Client) ChatReply(ctx context.Context, message string, profile ledger.FinanceProfile) (string, error) {
	return c.chat(ctx, chatPrompt(message, profile))
}

func (c *Client) chat(ctx context.Context, prompt string) (string, error) {
	if c.cfg.GroqKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY missing")
	}

	body := map[string]any{
		"model": c.cfg.GroqModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.GroqBaseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.GroqKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		bs, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("llm error: %s", string(bs))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
