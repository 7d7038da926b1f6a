// Package llmclient provides reference implementations of the LLM
// invocation capability the core (internal/caption) expects:
// func(ctx, requestBody string) (string, error). No concrete vendor SDK is
// imported by internal/caption itself; adapters live here instead.
package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"captionforge/internal/caption"
	"captionforge/pkg/logger"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

// Noop returns an LLMInvoker that performs no refinement: it always returns
// the empty-updates reply shape, so RefineWithLLM leaves the transcript
// unchanged. Useful when no LLM provider is configured.
func Noop() caption.LLMInvoker {
	return func(ctx context.Context, requestBody string) (string, error) {
		return `{"identifiedSpeakers": {}, "updates": []}`, nil
	}
}

// HTTPConfig configures the HTTP adapter.
type HTTPConfig struct {
	Endpoint    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	MaxRetries  int
	Timeout     time.Duration
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// HTTP returns an LLMInvoker that calls any OpenAI-compatible chat
// completions endpoint, retrying every failed attempt (transport error,
// non-200 status, or unparseable body) with linear backoff —
// the same shape as the teacher's HTTP-adapter retry loop, adapted from a
// multipart transcription upload to a single JSON chat completion call.
func HTTP(cfg HTTPConfig) caption.LLMInvoker {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	client := &http.Client{Timeout: cfg.Timeout}

	return func(ctx context.Context, requestBody string) (string, error) {
		payload := chatRequest{
			Model:       cfg.Model,
			Messages:    []chatMessage{{Role: "user", Content: requestBody}},
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("llmclient: marshal request: %w", err)
		}

		var lastErr error
		for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
			reply, err := doRequest(ctx, client, cfg, body)
			if err == nil {
				return reply, nil
			}
			lastErr = err
			logger.Warn("llmclient: request failed, retrying", "attempt", attempt, "error", err)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}
		return "", fmt.Errorf("llmclient: exhausted retries: %w", lastErr)
	}
}

func doRequest(ctx context.Context, client *http.Client, cfg HTTPConfig, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llmclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llmclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llmclient: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llmclient: status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("llmclient: parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llmclient: empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}
