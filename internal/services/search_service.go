package services

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tourgether/internal/models/db_models"
	"tourgether/internal/models/request_models"
	"tourgether/internal/models/response_models"
	"tourgether/internal/repositories"
	"tourgether/pkg/utils"
)

// semanticMatchThreshold is the minimum cosine similarity for a semantic
// catalog search hit.
const semanticMatchThreshold = 0.3

type SearchServiceInterface interface {
	Search(ctx context.Context, req request_models.SearchRequest) (*response_models.SearchResponse, error)
}

// SearchService answers direct catalog queries: semantic when the query can
// be embedded, plain ILIKE matching otherwise. Category, cuisine and rating
// filters are applied after retrieval.
type SearchService struct {
	attractions repositories.AttractionRepository
	restaurants repositories.RestaurantRepository
	ai          utils.AIClientInterface
	logger      *zap.Logger
}

func NewSearchService(
	attractions repositories.AttractionRepository,
	restaurants repositories.RestaurantRepository,
	ai utils.AIClientInterface,
	logger *zap.Logger,
) SearchServiceInterface {
	return &SearchService{
		attractions: attractions,
		restaurants: restaurants,
		ai:          ai,
		logger:      logger,
	}
}

func (s *SearchService) Search(ctx context.Context, req request_models.SearchRequest) (*response_models.SearchResponse, error) {
	if req.Query == "" && req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}
	req.Normalize()

	embedding, embErr := s.embedQuery(ctx, req)
	semantic := embErr == nil

	resp := &response_models.SearchResponse{
		Attractions: []db_models.Attraction{},
		Restaurants: []db_models.Restaurant{},
		Semantic:    semantic,
	}

	g, gctx := errgroup.WithContext(ctx)
	if req.WantsAttractions() {
		g.Go(func() error {
			var (
				results []db_models.Attraction
				err     error
			)
			if semantic {
				results, err = s.attractions.SemanticSearch(gctx, embedding, req.Destination, semanticMatchThreshold, req.Limit)
			} else {
				results, err = s.attractions.SearchByText(gctx, req.Query, req.Destination, req.Limit)
			}
			if err != nil {
				return err
			}
			resp.Attractions = filterAttractions(results, req)
			return nil
		})
	}
	if req.WantsRestaurants() {
		g.Go(func() error {
			var (
				results []db_models.Restaurant
				err     error
			)
			if semantic {
				results, err = s.restaurants.SemanticSearch(gctx, embedding, req.Destination, semanticMatchThreshold, req.Limit)
			} else {
				results, err = s.restaurants.SearchByText(gctx, req.Query, req.Destination, req.Limit)
			}
			if err != nil {
				return err
			}
			resp.Restaurants = filterRestaurants(results, req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("catalog search failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return resp, nil
}

// embedQuery attempts the query embedding; on failure the search silently
// falls back to text matching.
func (s *SearchService) embedQuery(ctx context.Context, req request_models.SearchRequest) (pgvector.Vector, error) {
	if req.Query == "" || !req.SemanticEnabled() {
		return pgvector.Vector{}, utils.ErrEmbeddingFailed
	}
	v, err := s.ai.GetEmbedding(ctx, req.Query)
	if err != nil {
		s.logger.Warn("query embedding failed, using text search", zap.Error(err))
		return pgvector.Vector{}, err
	}
	return v, nil
}

func filterAttractions(results []db_models.Attraction, req request_models.SearchRequest) []db_models.Attraction {
	filtered := make([]db_models.Attraction, 0, len(results))
	for _, a := range results {
		if len(req.Categories) > 0 && !hasOverlap(a.Categories, req.Categories) {
			continue
		}
		if req.MinRating > 0 && (a.Rating == nil || *a.Rating < req.MinRating) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func filterRestaurants(results []db_models.Restaurant, req request_models.SearchRequest) []db_models.Restaurant {
	filtered := make([]db_models.Restaurant, 0, len(results))
	for _, r := range results {
		if len(req.Cuisines) > 0 && !hasOverlap(r.Cuisines, req.Cuisines) {
			continue
		}
		if req.MinRating > 0 && (r.Rating == nil || *r.Rating < req.MinRating) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func hasOverlap(values, wanted []string) bool {
	for _, v := range values {
		for _, w := range wanted {
			if v == w {
				return true
			}
		}
	}
	return false
}
