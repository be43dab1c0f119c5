package provider

import (
	"log/slog"
	"sync"
	"time"

	"cribinfo/internal/config"
)

// Registry owns the process-wide backend singletons. Each backend is
// selected from configuration on first use and cached for the process
// lifetime; switching backends requires a restart.
type Registry struct {
	llmCfg   config.LLMConfig
	embedCfg config.EmbeddingConfig
	logger   *slog.Logger

	llmOnce sync.Once
	llm     LLM

	embedOnce sync.Once
	embedder  Embedder
}

// NewRegistry creates a registry; backends are not constructed until first
// requested.
func NewRegistry(cfg *config.Config, logger *slog.Logger) *Registry {
	return &Registry{
		llmCfg:   cfg.LLM,
		embedCfg: cfg.Embedding,
		logger:   logger,
	}
}

// LLM returns the configured language backend singleton.
func (r *Registry) LLM() LLM {
	r.llmOnce.Do(func() {
		timeout := time.Duration(r.llmCfg.TimeoutSeconds) * time.Second
		switch r.llmCfg.Provider {
		case "groq":
			r.logger.Info("using groq language backend", "model", r.llmCfg.GroqModel)
			r.llm = NewGroqLLM(r.llmCfg.GroqAPIBase, r.llmCfg.GroqAPIKey, r.llmCfg.GroqModel, timeout)
		default:
			r.logger.Info("using ollama language backend", "model", r.llmCfg.OllamaModel)
			r.llm = NewOllamaLLM(r.llmCfg.OllamaHost, r.llmCfg.OllamaModel, timeout)
		}
	})
	return r.llm
}

// Embedder returns the configured embedding backend singleton.
func (r *Registry) Embedder() Embedder {
	r.embedOnce.Do(func() {
		timeout := time.Duration(r.embedCfg.TimeoutSeconds) * time.Second
		switch r.embedCfg.Provider {
		case "none":
			r.logger.Info("embedding backend disabled, using zero vectors")
			r.embedder = NewNoopEmbedder(r.embedCfg.Dimensions)
		case "jina":
			r.logger.Info("using jina embedding backend", "model", r.embedCfg.JinaModel)
			r.embedder = NewJinaEmbedder(r.embedCfg.JinaAPIBase, r.embedCfg.JinaAPIKey,
				r.embedCfg.JinaModel, r.embedCfg.Dimensions, timeout)
		default:
			r.logger.Info("using ollama embedding backend", "model", r.embedCfg.OllamaModel)
			r.embedder = NewOllamaEmbedder(r.embedCfg.OllamaHost, r.embedCfg.OllamaModel,
				r.embedCfg.Dimensions, timeout)
		}
	})
	return r.embedder
}
