package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tourgether/internal/models/db_models"
)

// RestaurantRepository mirrors AttractionRepository over the restaurants
// table; the fused scoring and tie-break rules are identical.
type RestaurantRepository interface {
	HybridSearch(ctx context.Context, queryText string, embedding pgvector.Vector, destination string, limit int, vectorWeight, textWeight float64) ([]db_models.Restaurant, error)
	SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Restaurant, error)
	SemanticSearch(ctx context.Context, embedding pgvector.Vector, destination string, threshold float64, limit int) ([]db_models.Restaurant, error)
	SearchByText(ctx context.Context, query, destination string, limit int) ([]db_models.Restaurant, error)
	Upsert(ctx context.Context, restaurants []db_models.Restaurant) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

const restaurantHybridQuery = `
SELECT id, name, description, picture, destination, rating, cuisines, general_location,
       (? * CASE WHEN embedding IS NULL THEN 0
                 ELSE 1 - (embedding <=> ?::vector) END)
     + (? * ts_rank_cd(
              to_tsvector('english',
                  coalesce(name, '') || ' ' ||
                  coalesce(description, '') || ' ' ||
                  array_to_string(coalesce(cuisines, '{}'), ' ')),
              plainto_tsquery('english', ?), 32)) AS combined_score
FROM restaurants
WHERE destination ILIKE ?
ORDER BY combined_score DESC, rating DESC NULLS LAST, id ASC
LIMIT ?`

func (r *restaurantRepository) HybridSearch(ctx context.Context, queryText string, embedding pgvector.Vector, destination string, limit int, vectorWeight, textWeight float64) ([]db_models.Restaurant, error) {
	var results []db_models.Restaurant
	err := r.db.WithContext(ctx).
		Raw(restaurantHybridQuery,
			vectorWeight, embedding.String(),
			textWeight, queryText,
			"%"+destination+"%", limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *restaurantRepository) SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Restaurant, error) {
	var results []db_models.Restaurant
	err := r.db.WithContext(ctx).
		Select("id", "name", "description", "picture", "destination", "rating", "cuisines", "general_location").
		Where("destination ILIKE ?", "%"+destination+"%").
		Order("rating DESC NULLS LAST").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

const restaurantSemanticQuery = `
SELECT id, name, description, picture, destination, rating, cuisines, general_location,
       1 - (embedding <=> ?::vector) AS combined_score
FROM restaurants
WHERE embedding IS NOT NULL
  AND (? = '' OR destination ILIKE ?)
  AND 1 - (embedding <=> ?::vector) > ?
ORDER BY embedding <=> ?::vector
LIMIT ?`

func (r *restaurantRepository) SemanticSearch(ctx context.Context, embedding pgvector.Vector, destination string, threshold float64, limit int) ([]db_models.Restaurant, error) {
	var results []db_models.Restaurant
	vec := embedding.String()
	err := r.db.WithContext(ctx).
		Raw(restaurantSemanticQuery,
			vec, destination, "%"+destination+"%", vec, threshold, vec, limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *restaurantRepository) SearchByText(ctx context.Context, query, destination string, limit int) ([]db_models.Restaurant, error) {
	q := r.db.WithContext(ctx).
		Select("id", "name", "description", "picture", "destination", "rating", "cuisines", "general_location").
		Limit(limit)
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if destination != "" {
		q = q.Where("destination ILIKE ?", "%"+destination+"%")
	}

	var results []db_models.Restaurant
	if err := q.Order("rating DESC NULLS LAST").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *restaurantRepository) Upsert(ctx context.Context, restaurants []db_models.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "picture", "destination",
				"rating", "cuisines", "general_location", "embedding",
			}),
		}).
		Create(&restaurants).Error
}
