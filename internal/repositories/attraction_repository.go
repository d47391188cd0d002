package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tourgether/internal/models/db_models"
)

// AttractionRepository is the read/write boundary for the attractions table.
//
// HybridSearch ranks by a database-side fused score:
//
//	combined = vectorWeight * cosine_similarity + textWeight * lexical_rank
//
// where cosine similarity is 0 for rows without an embedding and the lexical
// rank is ts_rank_cd with the rank/(rank+1) normalization flag, so both
// terms live in [0,1]. Ties break by rating (nulls last), then by id, which
// keeps the ordering deterministic for a fixed catalog and query embedding.
type AttractionRepository interface {
	HybridSearch(ctx context.Context, queryText string, embedding pgvector.Vector, destination string, limit int, vectorWeight, textWeight float64) ([]db_models.Attraction, error)
	SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Attraction, error)
	SemanticSearch(ctx context.Context, embedding pgvector.Vector, destination string, threshold float64, limit int) ([]db_models.Attraction, error)
	SearchByText(ctx context.Context, query, destination string, limit int) ([]db_models.Attraction, error)
	Upsert(ctx context.Context, attractions []db_models.Attraction) error
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

const attractionHybridQuery = `
SELECT id, name, description, picture, destination, rating, categories, general_location,
       (? * CASE WHEN embedding IS NULL THEN 0
                 ELSE 1 - (embedding <=> ?::vector) END)
     + (? * ts_rank_cd(
              to_tsvector('english',
                  coalesce(name, '') || ' ' ||
                  coalesce(description, '') || ' ' ||
                  array_to_string(coalesce(categories, '{}'), ' ')),
              plainto_tsquery('english', ?), 32)) AS combined_score
FROM attractions
WHERE destination ILIKE ?
ORDER BY combined_score DESC, rating DESC NULLS LAST, id ASC
LIMIT ?`

func (r *attractionRepository) HybridSearch(ctx context.Context, queryText string, embedding pgvector.Vector, destination string, limit int, vectorWeight, textWeight float64) ([]db_models.Attraction, error) {
	var results []db_models.Attraction
	err := r.db.WithContext(ctx).
		Raw(attractionHybridQuery,
			vectorWeight, embedding.String(),
			textWeight, queryText,
			"%"+destination+"%", limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *attractionRepository) SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Attraction, error) {
	var results []db_models.Attraction
	err := r.db.WithContext(ctx).
		Select("id", "name", "description", "picture", "destination", "rating", "categories", "general_location").
		Where("destination ILIKE ?", "%"+destination+"%").
		Order("rating DESC NULLS LAST").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

const attractionSemanticQuery = `
SELECT id, name, description, picture, destination, rating, categories, general_location,
       1 - (embedding <=> ?::vector) AS combined_score
FROM attractions
WHERE embedding IS NOT NULL
  AND (? = '' OR destination ILIKE ?)
  AND 1 - (embedding <=> ?::vector) > ?
ORDER BY embedding <=> ?::vector
LIMIT ?`

func (r *attractionRepository) SemanticSearch(ctx context.Context, embedding pgvector.Vector, destination string, threshold float64, limit int) ([]db_models.Attraction, error) {
	var results []db_models.Attraction
	vec := embedding.String()
	err := r.db.WithContext(ctx).
		Raw(attractionSemanticQuery,
			vec, destination, "%"+destination+"%", vec, threshold, vec, limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *attractionRepository) SearchByText(ctx context.Context, query, destination string, limit int) ([]db_models.Attraction, error) {
	q := r.db.WithContext(ctx).
		Select("id", "name", "description", "picture", "destination", "rating", "categories", "general_location").
		Limit(limit)
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if destination != "" {
		q = q.Where("destination ILIKE ?", "%"+destination+"%")
	}

	var results []db_models.Attraction
	if err := q.Order("rating DESC NULLS LAST").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *attractionRepository) Upsert(ctx context.Context, attractions []db_models.Attraction) error {
	if len(attractions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "picture", "destination",
				"rating", "categories", "general_location", "embedding",
			}),
		}).
		Create(&attractions).Error
}
