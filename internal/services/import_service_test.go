package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourgether/internal/models/db_models"
	"tourgether/internal/models/request_models"
	"tourgether/pkg/utils"
)

func newImportFixture() (*MockAttractionRepository, *MockRestaurantRepository, *MockAIClient, ImportServiceInterface) {
	attractions := new(MockAttractionRepository)
	restaurants := new(MockRestaurantRepository)
	ai := new(MockAIClient)
	svc := NewImportService(attractions, restaurants, ai, zap.NewNop())
	return attractions, restaurants, ai, svc
}

func TestImport_EmptyPayloadRejected(t *testing.T) {
	_, _, _, svc := newImportFixture()

	summary, err := svc.Import(context.Background(), request_models.ImportRequest{})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestImport_MapsUppercaseSourceSchema(t *testing.T) {
	attractions, _, ai, svc := newImportFixture()

	records := []map[string]any{
		{
			"ID":               float64(42),
			"NAME":             "Sagrada Familia",
			"DESTINATION":      "Barcelona",
			"DESCRIPTION":      "Gaudi's basilica.",
			"RATING":           4.9,
			"CATEGORIES":       []any{"landmark", "church"},
			"GENERAL_LOCATION": "Eixample",
		},
	}

	embedding := pgvector.NewVector([]float32{0.1, 0.2})
	ai.On("GetEmbedding", mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Sagrada Familia") &&
			strings.Contains(text, "Barcelona") &&
			strings.Contains(text, "landmark")
	})).Return(embedding, nil).Once()
	attractions.On("Upsert", mock.Anything, mock.MatchedBy(func(batch []db_models.Attraction) bool {
		if len(batch) != 1 {
			return false
		}
		row := batch[0]
		return row.ID == 42 &&
			row.Name == "Sagrada Familia" &&
			row.Destination == "Barcelona" &&
			row.GeneralLocation == "Eixample" &&
			row.Rating != nil && *row.Rating == 4.9 &&
			len(row.Categories) == 2 &&
			row.Embedding != nil
	})).Return(nil).Once()

	summary, err := svc.Import(context.Background(), request_models.ImportRequest{Attractions: records})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.AttractionsImported)
	assert.Empty(t, summary.Errors)
	attractions.AssertExpectations(t)
	ai.AssertExpectations(t)
}

func TestImport_ReusesProvidedEmbedding(t *testing.T) {
	attractions, _, ai, svc := newImportFixture()

	records := []map[string]any{
		{
			"id":        float64(1),
			"name":      "Park Guell",
			"embedding": []any{0.25, 0.5, 0.75},
		},
	}

	attractions.On("Upsert", mock.Anything, mock.MatchedBy(func(batch []db_models.Attraction) bool {
		return len(batch) == 1 && batch[0].Embedding != nil
	})).Return(nil).Once()

	summary, err := svc.Import(context.Background(), request_models.ImportRequest{Attractions: records})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.AttractionsImported)
	ai.AssertNotCalled(t, "GetEmbedding", mock.Anything, mock.Anything)
}

func TestImport_EmbeddingsDisabledSkipsVector(t *testing.T) {
	attractions, _, ai, svc := newImportFixture()

	off := false
	records := []map[string]any{
		{"id": float64(5), "name": "Casa Batllo"},
	}

	attractions.On("Upsert", mock.Anything, mock.MatchedBy(func(batch []db_models.Attraction) bool {
		return len(batch) == 1 && batch[0].Embedding == nil
	})).Return(nil).Once()

	summary, err := svc.Import(context.Background(), request_models.ImportRequest{
		Attractions:        records,
		GenerateEmbeddings: &off,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.AttractionsImported)
	ai.AssertNotCalled(t, "GetEmbedding", mock.Anything, mock.Anything)
}

func TestImport_EmbeddingFailureKeepsRow(t *testing.T) {
	_, restaurants, ai, svc := newImportFixture()

	records := []map[string]any{
		{"id": "9", "name": "Tickets", "cuisines": "spanish, tapas"},
	}

	ai.On("GetEmbedding", mock.Anything, mock.Anything).
		Return(pgvector.Vector{}, errors.New("rate limited")).Once()
	restaurants.On("Upsert", mock.Anything, mock.MatchedBy(func(batch []db_models.Restaurant) bool {
		if len(batch) != 1 {
			return false
		}
		row := batch[0]
		return row.ID == 9 && row.Embedding == nil &&
			len(row.Cuisines) == 2 && row.Cuisines[1] == "tapas"
	})).Return(nil).Once()

	summary, err := svc.Import(context.Background(), request_models.ImportRequest{Restaurants: records})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.RestaurantsImported)
	assert.Empty(t, summary.Errors)
}

func TestImport_SkipsRowsWithoutIDOrName(t *testing.T) {
	attractions, _, ai, svc := newImportFixture()

	off := false
	records := []map[string]any{
		{"name": "No ID Here"},
		{"id": float64(2)},
		{"id": float64(3), "name": "Valid Spot"},
	}

	attractions.On("Upsert", mock.Anything, mock.MatchedBy(func(batch []db_models.Attraction) bool {
		return len(batch) == 1 && batch[0].Name == "Valid Spot"
	})).Return(nil).Once()

	summary, err := svc.Import(context.Background(), request_models.ImportRequest{
		Attractions:        records,
		GenerateEmbeddings: &off,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.AttractionsImported)
	assert.Len(t, summary.Errors, 2)
	ai.AssertNotCalled(t, "GetEmbedding", mock.Anything, mock.Anything)
}

func TestImport_BatchesByRequestedSize(t *testing.T) {
	attractions, _, _, svc := newImportFixture()

	off := false
	records := make([]map[string]any, 5)
	for i := range records {
		records[i] = map[string]any{"id": float64(i + 1), "name": "Spot"}
	}

	attractions.On("Upsert", mock.Anything, mock.AnythingOfType("[]db_models.Attraction")).
		Return(nil).Times(3)

	summary, err := svc.Import(context.Background(), request_models.ImportRequest{
		Attractions:        records,
		GenerateEmbeddings: &off,
		BatchSize:          2,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, summary.AttractionsImported)
	attractions.AssertExpectations(t)
}

func TestImport_FailedBatchReportedOthersContinue(t *testing.T) {
	attractions, _, _, svc := newImportFixture()

	off := false
	records := make([]map[string]any, 4)
	for i := range records {
		records[i] = map[string]any{"id": float64(i + 1), "name": "Spot"}
	}

	attractions.On("Upsert", mock.Anything, mock.AnythingOfType("[]db_models.Attraction")).
		Return(errors.New("deadlock detected")).Once()
	attractions.On("Upsert", mock.Anything, mock.AnythingOfType("[]db_models.Attraction")).
		Return(nil).Once()

	summary, err := svc.Import(context.Background(), request_models.ImportRequest{
		Attractions:        records,
		GenerateEmbeddings: &off,
		BatchSize:          2,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.AttractionsImported)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "batch upsert failed")
}
