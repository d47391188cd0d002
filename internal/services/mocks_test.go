package services

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/mock"

	"tourgether/internal/models/db_models"
	"tourgether/pkg/utils"
)

type MockAttractionRepository struct {
	mock.Mock
}

func (m *MockAttractionRepository) HybridSearch(ctx context.Context, queryText string, embedding pgvector.Vector, destination string, limit int, vectorWeight, textWeight float64) ([]db_models.Attraction, error) {
	args := m.Called(ctx, queryText, embedding, destination, limit, vectorWeight, textWeight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Attraction, error) {
	args := m.Called(ctx, destination, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) SemanticSearch(ctx context.Context, embedding pgvector.Vector, destination string, threshold float64, limit int) ([]db_models.Attraction, error) {
	args := m.Called(ctx, embedding, destination, threshold, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) SearchByText(ctx context.Context, query, destination string, limit int) ([]db_models.Attraction, error) {
	args := m.Called(ctx, query, destination, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Upsert(ctx context.Context, attractions []db_models.Attraction) error {
	args := m.Called(ctx, attractions)
	return args.Error(0)
}

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) HybridSearch(ctx context.Context, queryText string, embedding pgvector.Vector, destination string, limit int, vectorWeight, textWeight float64) ([]db_models.Restaurant, error) {
	args := m.Called(ctx, queryText, embedding, destination, limit, vectorWeight, textWeight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Restaurant, error) {
	args := m.Called(ctx, destination, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) SemanticSearch(ctx context.Context, embedding pgvector.Vector, destination string, threshold float64, limit int) ([]db_models.Restaurant, error) {
	args := m.Called(ctx, embedding, destination, threshold, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) SearchByText(ctx context.Context, query, destination string, limit int) ([]db_models.Restaurant, error) {
	args := m.Called(ctx, query, destination, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Upsert(ctx context.Context, restaurants []db_models.Restaurant) error {
	args := m.Called(ctx, restaurants)
	return args.Error(0)
}

type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(pgvector.Vector), args.Error(1)
}

func (m *MockAIClient) GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

type MockRetrievalService struct {
	mock.Mock
}

func (m *MockRetrievalService) HybridRetrieve(ctx context.Context, destination, tripType string) ([]db_models.Attraction, []db_models.Restaurant) {
	args := m.Called(ctx, destination, tripType)
	return toAttractions(args.Get(0)), toRestaurants(args.Get(1))
}

func (m *MockRetrievalService) TextSearch(ctx context.Context, destination string) ([]db_models.Attraction, []db_models.Restaurant) {
	args := m.Called(ctx, destination)
	return toAttractions(args.Get(0)), toRestaurants(args.Get(1))
}

func toAttractions(v any) []db_models.Attraction {
	if v == nil {
		return nil
	}
	return v.([]db_models.Attraction)
}

func toRestaurants(v any) []db_models.Restaurant {
	if v == nil {
		return nil
	}
	return v.([]db_models.Restaurant)
}

type MockWebSearchClient struct {
	mock.Mock
}

func (m *MockWebSearchClient) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockWebSearchClient) Search(ctx context.Context, query string) ([]utils.WebSnippet, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]utils.WebSnippet), args.Error(1)
}
