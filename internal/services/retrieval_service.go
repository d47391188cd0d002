package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tourgether/internal/models/db_models"
	"tourgether/internal/repositories"
	"tourgether/pkg/memcache"
	"tourgether/pkg/utils"
)

// Fused-score weights and result caps. The weights are design constants
// owned by this component, not request-tunable.
const (
	VectorWeight = 0.6
	TextWeight   = 0.4

	AttractionLimit = 10
	RestaurantLimit = 5
)

// embeddingCacheTTL bounds how long a destination query embedding is reused.
const embeddingCacheTTL = 10 * time.Minute

// RetrievalServiceInterface gathers catalog evidence for one destination.
// Both methods follow a degrade-don't-crash contract: every failure in this
// tier is logged and absorbed, and the caller only ever sees (possibly
// empty) result lists. Hybrid and lexical retrieval issue their attraction
// and restaurant queries in parallel, since they read disjoint tables.
type RetrievalServiceInterface interface {
	HybridRetrieve(ctx context.Context, destination, tripType string) ([]db_models.Attraction, []db_models.Restaurant)
	TextSearch(ctx context.Context, destination string) ([]db_models.Attraction, []db_models.Restaurant)
}

type RetrievalService struct {
	attractions repositories.AttractionRepository
	restaurants repositories.RestaurantRepository
	ai          utils.AIClientInterface
	embeddings  memcache.EmbeddingCache
	logger      *zap.Logger
}

func NewRetrievalService(
	attractions repositories.AttractionRepository,
	restaurants repositories.RestaurantRepository,
	ai utils.AIClientInterface,
	embeddings memcache.EmbeddingCache,
	logger *zap.Logger,
) RetrievalServiceInterface {
	return &RetrievalService{
		attractions: attractions,
		restaurants: restaurants,
		ai:          ai,
		embeddings:  embeddings,
		logger:      logger,
	}
}

// AttractionQuery builds the semantic query embedded for hybrid retrieval.
// The same embedding is reused for the restaurant query.
func AttractionQuery(destination, tripType string) string {
	return fmt.Sprintf("%s attractions and activities in %s",
		strings.ReplaceAll(tripType, "_", " "), destination)
}

func RestaurantQuery(destination string) string {
	return fmt.Sprintf("restaurants and dining in %s", destination)
}

func (s *RetrievalService) HybridRetrieve(ctx context.Context, destination, tripType string) ([]db_models.Attraction, []db_models.Restaurant) {
	searchQuery := AttractionQuery(destination, tripType)

	embedding, ok := s.embeddings.Get(searchQuery)
	if !ok {
		var err error
		embedding, err = s.ai.GetEmbedding(ctx, searchQuery)
		if err != nil {
			// Soft failure: the orchestrator falls through to lexical search.
			s.logger.Warn("hybrid retrieval skipped, embedding unavailable",
				zap.String("destination", destination), zap.Error(err))
			return nil, nil
		}
		s.embeddings.Set(searchQuery, embedding, embeddingCacheTTL)
	}

	var (
		attractions []db_models.Attraction
		restaurants []db_models.Restaurant
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attractions, err = s.attractions.HybridSearch(gctx, searchQuery, embedding,
			destination, AttractionLimit, VectorWeight, TextWeight)
		return err
	})
	g.Go(func() error {
		var err error
		restaurants, err = s.restaurants.HybridSearch(gctx, RestaurantQuery(destination), embedding,
			destination, RestaurantLimit, VectorWeight, TextWeight)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("hybrid search failed",
			zap.String("destination", destination), zap.Error(err))
		return nil, nil
	}

	s.logger.Info("hybrid search complete",
		zap.String("destination", destination),
		zap.Int("attractions", len(attractions)),
		zap.Int("restaurants", len(restaurants)))
	return attractions, restaurants
}

func (s *RetrievalService) TextSearch(ctx context.Context, destination string) ([]db_models.Attraction, []db_models.Restaurant) {
	var (
		attractions []db_models.Attraction
		restaurants []db_models.Restaurant
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attractions, err = s.attractions.SearchByDestination(gctx, destination, AttractionLimit)
		return err
	})
	g.Go(func() error {
		var err error
		restaurants, err = s.restaurants.SearchByDestination(gctx, destination, RestaurantLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("text search failed",
			zap.String("destination", destination), zap.Error(err))
		return nil, nil
	}

	s.logger.Info("text search complete",
		zap.String("destination", destination),
		zap.Int("attractions", len(attractions)),
		zap.Int("restaurants", len(restaurants)))
	return attractions, restaurants
}
