package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"tourgether/internal/models/db_models"
	"tourgether/internal/models/request_models"
	"tourgether/internal/models/response_models"
	"tourgether/internal/repositories"
	"tourgether/pkg/utils"
)

// searchableTextLimit caps the text fed to the embedding model per record.
const searchableTextLimit = 8000

// fieldMapping resolves canonical field names against whatever casing the
// source schema uses (NAME, name, Name...). It is built once per batch from
// the first record and then applied to every row, instead of probing key
// variants on every read.
type fieldMapping map[string]string

func resolveFieldMapping(record map[string]any, canonicalFields []string) fieldMapping {
	byLower := make(map[string]string, len(record))
	for key := range record {
		byLower[strings.ToLower(key)] = key
	}

	mapping := make(fieldMapping, len(canonicalFields))
	for _, field := range canonicalFields {
		if actual, ok := byLower[strings.ToLower(field)]; ok {
			mapping[field] = actual
		}
	}
	return mapping
}

func (m fieldMapping) str(record map[string]any, field string) string {
	actual, ok := m[field]
	if !ok {
		return ""
	}
	switch v := record[actual].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (m fieldMapping) strSlice(record map[string]any, field string) []string {
	actual, ok := m[field]
	if !ok {
		return nil
	}
	switch v := record[actual].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	default:
		return nil
	}
}

func (m fieldMapping) id(record map[string]any) (int64, bool) {
	actual, ok := m["id"]
	if !ok {
		return 0, false
	}
	switch v := record[actual].(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

func (m fieldMapping) rating(record map[string]any) *float64 {
	actual, ok := m["rating"]
	if !ok {
		return nil
	}
	switch v := record[actual].(type) {
	case float64:
		return &v
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return &parsed
		}
	}
	return nil
}

// embeddingOf extracts a pre-computed embedding carried by the source row.
func (m fieldMapping) embeddingOf(record map[string]any) *pgvector.Vector {
	actual, ok := m["embedding"]
	if !ok {
		return nil
	}
	raw, ok := record[actual].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	values := make([]float32, 0, len(raw))
	for _, item := range raw {
		f, ok := item.(float64)
		if !ok {
			return nil
		}
		values = append(values, float32(f))
	}
	vec := pgvector.NewVector(values)
	return &vec
}

var attractionSourceFields = []string{
	"id", "name", "destination", "description", "picture", "rating",
	"categories", "review_tags", "general_location", "embedding",
}

var restaurantSourceFields = []string{
	"id", "name", "destination", "description", "picture", "rating",
	"cuisines", "dishes", "review_tags", "general_location", "embedding",
}

type ImportServiceInterface interface {
	Import(ctx context.Context, req request_models.ImportRequest) (*response_models.ImportSummary, error)
}

// ImportService populates the catalog from externally exported rows. When a
// row carries no embedding and generation is enabled, one is computed from
// the record's searchable text; embedding failures skip the vector but keep
// the row, since lexical search still covers it.
type ImportService struct {
	attractions repositories.AttractionRepository
	restaurants repositories.RestaurantRepository
	ai          utils.AIClientInterface
	logger      *zap.Logger
}

func NewImportService(
	attractions repositories.AttractionRepository,
	restaurants repositories.RestaurantRepository,
	ai utils.AIClientInterface,
	logger *zap.Logger,
) ImportServiceInterface {
	return &ImportService{
		attractions: attractions,
		restaurants: restaurants,
		ai:          ai,
		logger:      logger,
	}
}

func (s *ImportService) Import(ctx context.Context, req request_models.ImportRequest) (*response_models.ImportSummary, error) {
	if len(req.Attractions) == 0 && len(req.Restaurants) == 0 {
		return nil, utils.ErrInvalidInput
	}

	summary := &response_models.ImportSummary{}
	batchSize := req.EffectiveBatchSize()

	if len(req.Attractions) > 0 {
		mapping := resolveFieldMapping(req.Attractions[0], attractionSourceFields)
		imported, errs := s.importAttractions(ctx, req.Attractions, mapping, req.EmbeddingsEnabled(), batchSize)
		summary.AttractionsImported = imported
		summary.Errors = append(summary.Errors, errs...)
	}

	if len(req.Restaurants) > 0 {
		mapping := resolveFieldMapping(req.Restaurants[0], restaurantSourceFields)
		imported, errs := s.importRestaurants(ctx, req.Restaurants, mapping, req.EmbeddingsEnabled(), batchSize)
		summary.RestaurantsImported = imported
		summary.Errors = append(summary.Errors, errs...)
	}

	s.logger.Info("catalog import complete",
		zap.Int("attractions", summary.AttractionsImported),
		zap.Int("restaurants", summary.RestaurantsImported),
		zap.Int("errors", len(summary.Errors)))
	return summary, nil
}

func (s *ImportService) importAttractions(ctx context.Context, records []map[string]any, mapping fieldMapping, generateEmbeddings bool, batchSize int) (int, []string) {
	imported := 0
	var errs []string

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		batch := make([]db_models.Attraction, 0, end-start)
		for _, record := range records[start:end] {
			id, ok := mapping.id(record)
			if !ok {
				errs = append(errs, fmt.Sprintf("attraction record without usable id (keys: %v)", recordKeys(record)))
				continue
			}

			row := db_models.Attraction{
				ID:              id,
				Name:            mapping.str(record, "name"),
				Description:     mapping.str(record, "description"),
				Picture:         mapping.str(record, "picture"),
				Destination:     mapping.str(record, "destination"),
				Rating:          mapping.rating(record),
				Categories:      mapping.strSlice(record, "categories"),
				GeneralLocation: mapping.str(record, "general_location"),
				Embedding:       mapping.embeddingOf(record),
			}
			if row.Name == "" {
				errs = append(errs, fmt.Sprintf("attraction %d has no name, skipped", id))
				continue
			}

			if row.Embedding == nil && generateEmbeddings {
				text := searchableText(record, mapping, "categories", "review_tags")
				if vec, err := s.ai.GetEmbedding(ctx, text); err != nil {
					s.logger.Warn("embedding generation failed during import",
						zap.Int64("attraction_id", id), zap.Error(err))
				} else {
					row.Embedding = &vec
				}
			}

			batch = append(batch, row)
		}

		if err := s.attractions.Upsert(ctx, batch); err != nil {
			errs = append(errs, fmt.Sprintf("attraction batch upsert failed: %v", err))
			continue
		}
		imported += len(batch)
	}

	return imported, errs
}

func (s *ImportService) importRestaurants(ctx context.Context, records []map[string]any, mapping fieldMapping, generateEmbeddings bool, batchSize int) (int, []string) {
	imported := 0
	var errs []string

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		batch := make([]db_models.Restaurant, 0, end-start)
		for _, record := range records[start:end] {
			id, ok := mapping.id(record)
			if !ok {
				errs = append(errs, fmt.Sprintf("restaurant record without usable id (keys: %v)", recordKeys(record)))
				continue
			}

			row := db_models.Restaurant{
				ID:              id,
				Name:            mapping.str(record, "name"),
				Description:     mapping.str(record, "description"),
				Picture:         mapping.str(record, "picture"),
				Destination:     mapping.str(record, "destination"),
				Rating:          mapping.rating(record),
				Cuisines:        mapping.strSlice(record, "cuisines"),
				GeneralLocation: mapping.str(record, "general_location"),
				Embedding:       mapping.embeddingOf(record),
			}
			if row.Name == "" {
				errs = append(errs, fmt.Sprintf("restaurant %d has no name, skipped", id))
				continue
			}

			if row.Embedding == nil && generateEmbeddings {
				text := searchableText(record, mapping, "cuisines", "dishes", "review_tags")
				if vec, err := s.ai.GetEmbedding(ctx, text); err != nil {
					s.logger.Warn("embedding generation failed during import",
						zap.Int64("restaurant_id", id), zap.Error(err))
				} else {
					row.Embedding = &vec
				}
			}

			batch = append(batch, row)
		}

		if err := s.restaurants.Upsert(ctx, batch); err != nil {
			errs = append(errs, fmt.Sprintf("restaurant batch upsert failed: %v", err))
			continue
		}
		imported += len(batch)
	}

	return imported, errs
}

// searchableText concatenates the fields worth embedding for one record.
func searchableText(record map[string]any, mapping fieldMapping, extraFields ...string) string {
	parts := []string{
		mapping.str(record, "name"),
		mapping.str(record, "destination"),
		mapping.str(record, "description"),
	}
	for _, field := range extraFields {
		if values := mapping.strSlice(record, field); len(values) > 0 {
			parts = append(parts, strings.Join(values, " "))
		}
	}

	joined := strings.Join(nonEmpty(parts), " ")
	return Truncate(joined, searchableTextLimit)
}

func nonEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func recordKeys(record map[string]any) []string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	return keys
}
