package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClientInterface on Google's Gemini models.
// text-embedding-004 natively produces vectors of EmbeddingDimensions width,
// so catalog embeddings stay interchangeable with the OpenAI client.
type GeminiClient struct {
	client         *genai.Client
	embeddingModel string
	chatModel      string
	logger         *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, embeddingModel, chatModel string, logger *zap.Logger) (*GeminiClient, error) {
	if embeddingModel == "" {
		embeddingModel = "text-embedding-004"
	}
	if chatModel == "" {
		chatModel = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		embeddingModel: embeddingModel,
		chatModel:      chatModel,
		logger:         logger,
	}, nil
}

func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return pgvector.Vector{}, fmt.Errorf("%w: empty input text", ErrEmbeddingFailed)
	}

	em := c.client.EmbeddingModel(c.embeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		c.logger.Warn("gemini embedding call failed", zap.Error(err))
		return pgvector.Vector{}, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return pgvector.Vector{}, fmt.Errorf("%w: empty response", ErrEmbeddingFailed)
	}

	return pgvector.NewVector(res.Embedding.Values), nil
}

func (c *GeminiClient) GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.chatModel)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	m.SetTemperature(generationTemperature)

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", c.classifyGenerationError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content returned", ErrGenerationFailed)
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return out.String(), nil
}

func (c *GeminiClient) classifyGenerationError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			c.logger.Warn("gemini rate limited", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusPaymentRequired, http.StatusForbidden:
			c.logger.Error("gemini quota exhausted", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		}
	}
	c.logger.Error("gemini generation failed", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
