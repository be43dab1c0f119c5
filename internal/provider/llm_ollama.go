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

// OllamaLLM parses queries against a local Ollama server.
type OllamaLLM struct {
	host       string
	model      string
	httpClient *http.Client
}

// NewOllamaLLM creates a client for the Ollama chat API.
func NewOllamaLLM(host, model string, timeout time.Duration) *OllamaLLM {
	return &OllamaLLM{
		host:       strings.TrimRight(host, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type ollamaChatRequest struct {
	Model    string             `json:"model"`
	Messages []chatMessage      `json:"messages"`
	Stream   bool               `json:"stream"`
	Options  map[string]float64 `json:"options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Message chatMessage `json:"message"`
}

// Chat implements LLM.
func (c *OllamaLLM) Chat(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	reqBody, err := json.Marshal(ollamaChatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Stream:  false,
		Options: map[string]float64{"temperature": 0},
	})
	if err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "marshal ollama request", err)
	}

	url := c.host + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "create ollama request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "ollama unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "read ollama response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", domain.Wrap(domain.ErrParserUnavailable, "ollama chat",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var result ollamaChatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", domain.Wrap(domain.ErrParserUnavailable, "decode ollama response", err)
	}

	return result.Message.Content, nil
}
