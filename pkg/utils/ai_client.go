package utils

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions is the width of every catalog embedding. Both the
// OpenAI and the Gemini client request vectors of this length so that the
// pgvector column stays provider-agnostic.
const EmbeddingDimensions = 768

// AIClientInterface is the outbound boundary to the language-model provider.
// GetEmbedding turns free text into a dense vector; GenerateItinerary runs a
// chat completion with a system and a user message and returns the raw text.
//
// Both calls are network-bound and may fail. Callers in the retrieval tier
// must absorb embedding failures (degrade to lexical search), while
// generation failures are propagated with a distinct kind: ErrRateLimited for
// an upstream 429 and ErrQuotaExceeded for exhausted credits.
type AIClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
