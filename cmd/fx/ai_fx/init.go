package ai_fx

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourgether/pkg/utils"
)

var Module = fx.Provide(ProvideAIClient)

// AIConfig holds provider selection and model names.
type AIConfig struct {
	Provider       string
	APIKey         string
	EmbeddingModel string
	ChatModel      string
}

// ProvideAIClient creates the embedding/completion client selected by the
// AI_PROVIDER environment variable ("openai" or "gemini").
func ProvideAIClient(logger *zap.Logger) (utils.AIClientInterface, error) {
	config, err := getAIConfig()
	if err != nil {
		return nil, err
	}

	logger.Info("initializing AI client",
		zap.String("provider", config.Provider),
		zap.String("embedding_model", config.EmbeddingModel),
		zap.String("chat_model", config.ChatModel))

	switch config.Provider {
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.EmbeddingModel, config.ChatModel, logger), nil
	case "gemini":
		client, err := utils.NewGeminiClient(context.Background(), config.APIKey, config.EmbeddingModel, config.ChatModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func getAIConfig() (AIConfig, error) {
	provider := strings.ToLower(getEnvWithDefault("AI_PROVIDER", "openai"))

	config := AIConfig{Provider: provider}
	switch provider {
	case "openai":
		config.APIKey = os.Getenv("OPENAI_API_KEY")
		config.EmbeddingModel = getEnvWithDefault("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small")
		config.ChatModel = getEnvWithDefault("OPENAI_CHAT_MODEL", "gpt-4o-mini")
		if config.APIKey == "" {
			return config, fmt.Errorf("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		config.APIKey = os.Getenv("GEMINI_API_KEY")
		config.EmbeddingModel = getEnvWithDefault("GEMINI_EMBEDDING_MODEL", "text-embedding-004")
		config.ChatModel = getEnvWithDefault("GEMINI_CHAT_MODEL", "gemini-1.5-flash")
		if config.APIKey == "" {
			return config, fmt.Errorf("GEMINI_API_KEY is required when using the Gemini provider")
		}
	}

	return config, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
