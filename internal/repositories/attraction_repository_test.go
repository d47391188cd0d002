package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return mockDB, mock, gormDB
}

func attractionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "picture", "destination",
		"rating", "categories", "general_location", "combined_score",
	})
}

func TestAttractionHybridSearch(t *testing.T) {
	mockDB, mock, gormDB := setupTestDB(t)
	defer mockDB.Close()

	embedding := pgvector.NewVector([]float32{0.1, 0.2, 0.3})
	mock.ExpectQuery("FROM attractions").
		WithArgs(0.6, embedding.String(), 0.4, "historical attractions in Kyoto", "%Kyoto%", 10).
		WillReturnRows(attractionRows().
			AddRow(1, "Fushimi Inari", "Shrine with torii gates.", "", "Kyoto", 4.7, "{shrine,landmark}", "Fushimi", 0.91).
			AddRow(2, "Nijo Castle", "Shogunate castle.", "", "Kyoto", 4.5, "{castle}", "Nakagyo", 0.84))

	repo := NewAttractionRepository(gormDB)
	results, err := repo.HybridSearch(context.Background(), "historical attractions in Kyoto",
		embedding, "Kyoto", 10, 0.6, 0.4)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Fushimi Inari", results[0].Name)
	assert.Equal(t, 0.91, results[0].CombinedScore)
	assert.Equal(t, []string{"shrine", "landmark"}, []string(results[0].Categories))
	require.NotNil(t, results[0].Rating)
	assert.Equal(t, 4.7, *results[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttractionHybridSearchPropagatesError(t *testing.T) {
	mockDB, mock, gormDB := setupTestDB(t)
	defer mockDB.Close()

	mock.ExpectQuery("FROM attractions").
		WillReturnError(sql.ErrConnDone)

	repo := NewAttractionRepository(gormDB)
	results, err := repo.HybridSearch(context.Background(), "anything",
		pgvector.NewVector([]float32{0.1}), "Kyoto", 10, 0.6, 0.4)

	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestAttractionSearchByDestination(t *testing.T) {
	mockDB, mock, gormDB := setupTestDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT .+ FROM "attractions" WHERE destination ILIKE`).
		WithArgs("%Lisbon%", 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "picture", "destination",
			"rating", "categories", "general_location",
		}).AddRow(3, "Belem Tower", "Riverside fortress.", "", "Lisbon", 4.4, "{landmark}", "Belem"))

	repo := NewAttractionRepository(gormDB)
	results, err := repo.SearchByDestination(context.Background(), "Lisbon", 10)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Belem Tower", results[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttractionSemanticSearchFiltersByThreshold(t *testing.T) {
	mockDB, mock, gormDB := setupTestDB(t)
	defer mockDB.Close()

	embedding := pgvector.NewVector([]float32{0.5, 0.5})
	vec := embedding.String()
	mock.ExpectQuery("FROM attractions").
		WithArgs(vec, "Kyoto", "%Kyoto%", vec, 0.3, vec, 10).
		WillReturnRows(attractionRows().
			AddRow(1, "Kinkaku-ji", "Golden pavilion.", "", "Kyoto", 4.6, "{temple}", "Kita", 0.72))

	repo := NewAttractionRepository(gormDB)
	results, err := repo.SemanticSearch(context.Background(), embedding, "Kyoto", 0.3, 10)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Kinkaku-ji", results[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttractionSearchByTextMatchesNameAndDescription(t *testing.T) {
	mockDB, mock, gormDB := setupTestDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT .+ FROM "attractions" WHERE \(name ILIKE .+ OR description ILIKE .+\) AND destination ILIKE`).
		WithArgs("%garden%", "%garden%", "%Kyoto%", 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "picture", "destination",
			"rating", "categories", "general_location",
		}).AddRow(5, "Zen Garden", "Rock garden.", "", "Kyoto", nil, "{garden}", ""))

	repo := NewAttractionRepository(gormDB)
	results, err := repo.SearchByText(context.Background(), "garden", "Kyoto", 10)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}
