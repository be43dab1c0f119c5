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

// OllamaEmbedder generates embeddings with a local Ollama server.
type OllamaEmbedder struct {
	host       string
	model      string
	dims       int
	httpClient *http.Client
}

// NewOllamaEmbedder creates a client for the Ollama embed API.
func NewOllamaEmbedder(host, model string, dims int, timeout time.Duration) *OllamaEmbedder {
	return &OllamaEmbedder{
		host:       strings.TrimRight(host, "/"),
		model:      model,
		dims:       dims,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Dimensions implements Embedder.
func (c *OllamaEmbedder) Dimensions() int { return c.dims }

type ollamaEmbedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type ollamaEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// Embed implements Embedder.
func (c *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return zeroVector(c.dims), nil
	}

	reqBody, err := json.Marshal(ollamaEmbedRequest{Model: c.model, Input: text})
	if err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "marshal ollama request", err)
	}

	url := c.host + "/api/embed"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "create ollama request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "ollama unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "read ollama response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "ollama embed",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var result ollamaEmbedResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "decode ollama response", err)
	}
	if len(result.Embeddings) == 0 {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "ollama embed",
			fmt.Errorf("empty embedding result"))
	}

	return checkDimensions(result.Embeddings[0], c.dims)
}
