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

// JinaEmbedder generates embeddings with the hosted Jina API.
type JinaEmbedder struct {
	apiBase    string
	apiKey     string
	model      string
	dims       int
	httpClient *http.Client
}

// NewJinaEmbedder creates a client for the Jina embeddings API.
func NewJinaEmbedder(apiBase, apiKey, model string, dims int, timeout time.Duration) *JinaEmbedder {
	return &JinaEmbedder{
		apiBase:    strings.TrimRight(apiBase, "/"),
		apiKey:     apiKey,
		model:      model,
		dims:       dims,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Dimensions implements Embedder.
func (c *JinaEmbedder) Dimensions() int { return c.dims }

type jinaEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type jinaEmbedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// Embed implements Embedder.
func (c *JinaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return zeroVector(c.dims), nil
	}

	reqBody, err := json.Marshal(jinaEmbedRequest{Model: c.model, Input: []string{text}})
	if err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "marshal jina request", err)
	}

	url := c.apiBase + "/embeddings"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "create jina request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "jina unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "read jina response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "jina embed",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var result jinaEmbedResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "decode jina response", err)
	}
	if len(result.Data) == 0 {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "jina embed",
			fmt.Errorf("empty embedding result"))
	}

	return checkDimensions(result.Data[0].Embedding, c.dims)
}
