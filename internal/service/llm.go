package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/nutricheck/backend/internal/logger"
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat-completions request body. Stream is always false; the
// pipeline needs the whole reply before parsing.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	Stream      bool      `json:"stream"`
}

// chatResponse accepts both the OpenAI shape (choices[].message) and the
// native Ollama /api/chat shape (message).
type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Message *Message `json:"message"`
}

// LLMConfig is everything LLMService needs; nothing is read from the environment.
type LLMConfig struct {
	Endpoint    string
	Model       string
	APIKey      string
	Timeout     time.Duration
	Temperature float64
}

// LLMService talks to an OpenAI-compatible chat-completions endpoint (Ollama,
// OpenAI, DeepSeek).
type LLMService struct {
	endpoint    string
	model       string
	apiKey      string
	temperature float64
	client      *http.Client
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("llm endpoint must be set")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model must be set")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	return &LLMService{
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		temperature: temperature,
		client:      &http.Client{Timeout: timeout},
	}, nil
}

// Generate sends prompt as a single user message and returns the reply text.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := Request{
		Model:       s.model,
		Messages:    []Message{{Role: "user", Content: prompt}},
		Temperature: s.temperature,
		Stream:      false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	logger.Debug("llm reply received",
		zap.String("model", s.model),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, truncate(string(body), 512))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	switch {
	case len(result.Choices) > 0:
		return result.Choices[0].Message.Content, nil
	case result.Message != nil:
		return result.Message.Content, nil
	default:
		return "", fmt.Errorf("no response from API")
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
