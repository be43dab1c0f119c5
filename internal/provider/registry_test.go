package provider

import (
	"io"
	"log/slog"
	"testing"

	"cribinfo/internal/config"

	"github.com/stretchr/testify/assert"
)

func registryFor(llmProvider, embedProvider string) *Registry {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			Provider:       llmProvider,
			OllamaHost:     "http://localhost:11434",
			OllamaModel:    "llama3.2",
			GroqAPIBase:    "https://api.groq.com/openai/v1",
			GroqAPIKey:     "k",
			GroqModel:      "llama-3.1-8b-instant",
			TimeoutSeconds: 30,
		},
		Embedding: config.EmbeddingConfig{
			Provider:       embedProvider,
			Dimensions:     768,
			OllamaHost:     "http://localhost:11434",
			OllamaModel:    "nomic-embed-text",
			JinaAPIBase:    "https://api.jina.ai/v1",
			JinaAPIKey:     "k",
			JinaModel:      "jina-embeddings-v2-base-en",
			TimeoutSeconds: 30,
		},
	}
	return NewRegistry(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistrySelectsBackends(t *testing.T) {
	r := registryFor("groq", "jina")
	assert.IsType(t, &GroqLLM{}, r.LLM())
	assert.IsType(t, &JinaEmbedder{}, r.Embedder())

	r = registryFor("ollama", "ollama")
	assert.IsType(t, &OllamaLLM{}, r.LLM())
	assert.IsType(t, &OllamaEmbedder{}, r.Embedder())

	r = registryFor("ollama", "none")
	assert.IsType(t, &NoopEmbedder{}, r.Embedder())
}

func TestRegistryReturnsSingletons(t *testing.T) {
	r := registryFor("ollama", "ollama")
	assert.Same(t, r.LLM(), r.LLM())
	assert.Same(t, r.Embedder(), r.Embedder())
}

func TestRegistryUnknownProviderFallsBackToOllama(t *testing.T) {
	r := registryFor("something-else", "something-else")
	assert.IsType(t, &OllamaLLM{}, r.LLM())
	assert.IsType(t, &OllamaEmbedder{}, r.Embedder())
}
