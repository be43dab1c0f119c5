package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	LLM       LLMConfig
	Embedding EmbeddingConfig
	Search    SearchConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host           string
	Port           int
	GinMode        string
	AllowedOrigins string
}

// PostgresConfig holds database configuration.
type PostgresConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// LLMConfig selects and configures the language backend used for query
// parsing. Provider is "ollama" or "groq".
type LLMConfig struct {
	Provider string

	OllamaHost  string
	OllamaModel string

	GroqAPIKey  string
	GroqAPIBase string
	GroqModel   string

	TimeoutSeconds int
}

// EmbeddingConfig selects and configures the embedding backend.
// Provider is "ollama", "jina" or "none" (zero vectors, filter-only search).
type EmbeddingConfig struct {
	Provider   string
	Dimensions int

	OllamaHost  string
	OllamaModel string

	JinaAPIKey  string
	JinaAPIBase string
	JinaModel   string

	TimeoutSeconds int
}

// SearchConfig holds retrieval defaults.
type SearchConfig struct {
	DefaultCity  string
	DefaultLimit int
	MaxLimit     int
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables, with an optional
// .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Postgres: PostgresConfig{
			DSN:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "cribinfo"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		LLM: LLMConfig{
			Provider:       getEnv("CRIB_LLM_PROVIDER", "ollama"),
			OllamaHost:     getEnv("OLLAMA_HOST", "http://localhost:11434"),
			OllamaModel:    getEnv("OLLAMA_LLM_MODEL", "llama3.2"),
			GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
			GroqAPIBase:    getEnv("GROQ_API_BASE", "https://api.groq.com/openai/v1"),
			GroqModel:      getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
			TimeoutSeconds: getEnvAsInt("CRIB_LLM_TIMEOUT", 30),
		},
		Embedding: EmbeddingConfig{
			Provider:       getEnv("CRIB_EMBEDDING_PROVIDER", "ollama"),
			Dimensions:     getEnvAsInt("CRIB_EMBEDDING_DIMENSIONS", 768),
			OllamaHost:     getEnv("OLLAMA_HOST", "http://localhost:11434"),
			OllamaModel:    getEnv("OLLAMA_EMBED_MODEL", "nomic-embed-text"),
			JinaAPIKey:     getEnv("JINA_API_KEY", ""),
			JinaAPIBase:    getEnv("JINA_API_BASE", "https://api.jina.ai/v1"),
			JinaModel:      getEnv("JINA_MODEL", "jina-embeddings-v2-base-en"),
			TimeoutSeconds: getEnvAsInt("CRIB_EMBEDDING_TIMEOUT", 30),
		},
		Search: SearchConfig{
			DefaultCity:  getEnv("CRIB_DEFAULT_CITY", "bangalore"),
			DefaultLimit: getEnvAsInt("SEARCH_DEFAULT_LIMIT", 10),
			MaxLimit:     getEnvAsInt("SEARCH_MAX_LIMIT", 50),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// PostgresDSN returns the connection string, preferring a full DATABASE_URL
// over assembly from individual fields.
func (c *Config) PostgresDSN() string {
	if c.Postgres.DSN != "" {
		return c.Postgres.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.Database,
		c.Postgres.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
