package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cribinfo/internal/domain"
)

// GroqLLM parses queries against the hosted Groq OpenAI-compatible API.
type GroqLLM struct {
	apiBase    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGroqLLM creates a client for the Groq chat completions API.
func NewGroqLLM(apiBase, apiKey, model string, timeout time.Duration) *GroqLLM {
	return &GroqLLM{
		apiBase:    strings.TrimRight(apiBase, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type groqChatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type groqChatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Chat implements LLM.
func (c *GroqLLM) Chat(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	reqBody, err := json.Marshal(groqChatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: 0,
		MaxTokens:   500,
	})
	if err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "marshal groq request", err)
	}

	url := c.apiBase + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "create groq request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "groq unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "read groq response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", domain.Wrap(domain.ErrParserUnavailable, "groq chat",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var result groqChatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "decode groq response", err)
	}
	if len(result.Choices) == 0 {
		return "", domain.Wrap(domain.ErrParserUnavailable, "groq chat",
			fmt.Errorf("empty choices"))
	}

	return result.Choices[0].Message.Content, nil
}
