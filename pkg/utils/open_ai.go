package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	generationTemperature = 0.4
	generationMaxTokens   = 4000
)

// OpenAIClient implements AIClientInterface on the OpenAI API.
type OpenAIClient struct {
	client         *openai.Client
	embeddingModel openai.EmbeddingModel
	chatModel      string
	logger         *zap.Logger
}

func NewOpenAIClient(apiKey, embeddingModel, chatModel string, logger *zap.Logger) *OpenAIClient {
	if embeddingModel == "" {
		embeddingModel = string(openai.SmallEmbedding3)
	}
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &OpenAIClient{
		client:         openai.NewClient(apiKey),
		embeddingModel: openai.EmbeddingModel(embeddingModel),
		chatModel:      chatModel,
		logger:         logger,
	}
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return pgvector.Vector{}, fmt.Errorf("%w: empty input text", ErrEmbeddingFailed)
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      c.embeddingModel,
		Dimensions: EmbeddingDimensions,
	})
	if err != nil {
		c.logger.Warn("openai embedding call failed", zap.Error(err))
		return pgvector.Vector{}, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("%w: empty response", ErrEmbeddingFailed)
	}

	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIClient) GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return "", c.classifyGenerationError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrGenerationFailed)
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyGenerationError keeps rate-limit and quota exhaustion distinct:
// the first is retryable by the caller, the second needs operator action.
func (c *OpenAIClient) classifyGenerationError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if isQuotaError(apiErr) {
			c.logger.Error("openai quota exhausted", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		}
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			c.logger.Warn("openai rate limited", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}
	c.logger.Error("openai generation failed", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
}

func isQuotaError(apiErr *openai.APIError) bool {
	if apiErr.HTTPStatusCode == http.StatusPaymentRequired {
		return true
	}
	if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
		return true
	}
	return false
}
