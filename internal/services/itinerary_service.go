package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tourgether/internal/models/db_models"
	"tourgether/internal/models/request_models"
	"tourgether/internal/models/response_models"
	"tourgether/pkg/utils"
)

var tripTypeLabels = map[string]string{
	"landmarks":         "Famous landmarks and iconic spots",
	"historical_places": "Historical sites, museums, and cultural heritage",
	"nature":            "Natural parks, beaches, and outdoor adventures",
	"entertainment":     "Shows, nightlife, theme parks, and attractions",
}

var paceLabels = map[string]string{
	"relaxed":    "relaxed pace with plenty of downtime",
	"moderate":   "balanced mix of activities and rest",
	"fast_paced": "action-packed with many activities each day",
}

var diningLabels = map[string]string{
	"local":       "authentic local cuisine",
	"mixed":       "a mix of local and international dining",
	"fine_dining": "upscale fine dining experiences",
}

// responseDescLimit bounds the description echoed back in the response body.
const responseDescLimit = 200

const systemPrompt = `You are TourGether, an expert AI travel planner powered by RAG (Retrieval-Augmented Generation).

CRITICAL RULES:
1. You MUST ONLY recommend attractions, restaurants, and places that are mentioned in the provided CONTEXT.
2. Do NOT invent or hallucinate any places, names, or details that are not in the context.
3. If the context lacks information, say "Based on available information..." and only use what's provided.
4. Always cite the actual names from the context when making recommendations.
5. Include the actual ratings from the context when available.

Your itineraries must be:
- Based STRICTLY on the retrieved context below
- Practical with specific times for each activity
- Include restaurant recommendations from the context
- Provide estimated costs in the user's preferred currency
- Well-organized with clear day headers and time slots`

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.ItineraryResponse, error)
}

// ItineraryService is the per-request state machine:
//
//	Validate -> HybridRetrieve -> (empty? TextSearch) -> (still empty? WebSearch)
//	         -> AssembleContext -> Generate -> Respond
//
// Retrieval failures degrade silently; only validation and generation
// failures surface to the caller.
type ItineraryService struct {
	retrieval RetrievalServiceInterface
	webSearch utils.WebSearchClientInterface
	ai        utils.AIClientInterface
	logger    *zap.Logger
}

func NewItineraryService(
	retrieval RetrievalServiceInterface,
	webSearch utils.WebSearchClientInterface,
	ai utils.AIClientInterface,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		retrieval: retrieval,
		webSearch: webSearch,
		ai:        ai,
		logger:    logger,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.ItineraryResponse, error) {
	if details := req.Validate(); len(details) > 0 {
		return nil, utils.NewValidationError(details)
	}

	s.logger.Info("generating itinerary",
		zap.String("destination", req.Destination),
		zap.String("trip_type", req.TripType),
		zap.Int("days", req.DaysCount))

	// Tier 1: hybrid retrieval.
	attractions, restaurants := s.retrieval.HybridRetrieve(ctx, req.Destination, req.TripType)

	// Tier 2: lexical fallback when the catalog yielded nothing at all.
	if len(attractions) == 0 && len(restaurants) == 0 {
		s.logger.Info("hybrid search empty, trying text search",
			zap.String("destination", req.Destination))
		attractions, restaurants = s.retrieval.TextSearch(ctx, req.Destination)
	}

	// Tier 3: web search, last resort before generating without evidence.
	var snippets []utils.WebSnippet
	if len(attractions) == 0 && s.webSearch.Enabled() {
		snippets = s.searchWeb(ctx, req, len(restaurants) == 0)
	}

	contextBlock := BuildContext(attractions, restaurants, snippets)
	s.logger.Info("context assembled",
		zap.Int("attractions", len(attractions)),
		zap.Int("restaurants", len(restaurants)),
		zap.Int("web_sources", len(snippets)),
		zap.Int("context_length", len(contextBlock)))

	itinerary, err := s.ai.GenerateItinerary(ctx, systemPrompt, buildUserPrompt(req, contextBlock))
	if err != nil {
		return nil, err
	}

	if contextBlock != "" {
		s.checkContextConsistency(itinerary, attractions, restaurants, snippets)
	}

	return buildItineraryResponse(req, itinerary, attractions, restaurants, snippets), nil
}

// searchWeb issues the attraction query and, when the catalog also has no
// restaurants, a second restaurant query. The two calls are independent and
// run in parallel; provider errors yield empty snippets, never an error.
func (s *ItineraryService) searchWeb(ctx context.Context, req request_models.TripRequest, includeRestaurants bool) []utils.WebSnippet {
	attractionQuery := fmt.Sprintf("best %s attractions and things to do in %s",
		strings.ReplaceAll(req.TripType, "_", " "), req.Destination)
	restaurantQuery := fmt.Sprintf("best restaurants and places to eat in %s", req.Destination)

	var attractionSnippets, restaurantSnippets []utils.WebSnippet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := s.webSearch.Search(gctx, attractionQuery)
		if err != nil {
			s.logger.Warn("web search for attractions failed", zap.Error(err))
			return nil
		}
		attractionSnippets = results
		return nil
	})
	if includeRestaurants {
		g.Go(func() error {
			results, err := s.webSearch.Search(gctx, restaurantQuery)
			if err != nil {
				s.logger.Warn("web search for restaurants failed", zap.Error(err))
				return nil
			}
			restaurantSnippets = results
			return nil
		})
	}
	_ = g.Wait()

	return append(attractionSnippets, restaurantSnippets...)
}

func buildUserPrompt(req request_models.TripRequest, contextBlock string) string {
	tripTypeLabel := tripTypeLabels[req.TripType]
	paceLabel := paceLabels[req.Pace]
	diningLabel := diningLabels[req.DiningStyle]

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s.\n\n", req.DaysCount, req.Destination)
	b.WriteString("**Trip Details:**\n")
	fmt.Fprintf(&b, "- Travelers: %d %s\n", req.Travelers, pluralize(req.Travelers, "person", "people"))
	fmt.Fprintf(&b, "- Dates: %s to %s\n", req.StartDate, req.EndDate)
	fmt.Fprintf(&b, "- Budget: %s %.0f - %.0f total\n", req.Currency, req.BudgetMin, req.BudgetMax)
	fmt.Fprintf(&b, "- Focus: %s\n", tripTypeLabel)
	fmt.Fprintf(&b, "- Pace: %s\n", paceLabel)
	fmt.Fprintf(&b, "- Dining preference: %s\n", diningLabel)
	if req.PredictedRegion != "" {
		fmt.Fprintf(&b, "- Region context: %s\n", strings.ReplaceAll(req.PredictedRegion, "_", " "))
	}

	b.WriteString("\n---\n## RETRIEVED CONTEXT (USE ONLY THIS INFORMATION):\n")
	if contextBlock != "" {
		b.WriteString(contextBlock)
	} else {
		fmt.Fprintf(&b, "No specific data available for this destination. Please provide general travel recommendations based on your knowledge of %s.", req.Destination)
	}
	b.WriteString("\n---\n\n")

	b.WriteString(`Using ONLY the information from the context above, create a day-by-day itinerary with:
1. Morning, afternoon, and evening activities (from the attractions in context)
2. Restaurant recommendations (from the restaurants in context)
3. Estimated costs for major activities and meals
4. Travel tips between locations
5. Alternative options for flexibility

Format each day clearly with:
## Day X: [Theme/Focus]
**Morning (8:00 AM - 12:00 PM)**
**Afternoon (12:00 PM - 6:00 PM)**
**Evening (6:00 PM onwards)**

Include practical details like opening hours and best times to visit.`)

	return b.String()
}

// checkContextConsistency verifies the use-only-provided-context contract
// after the fact: when the context was non-empty but the generated text
// cites none of its names, the output likely drifted to general knowledge.
// The outcome is logged as a warning, not rejected.
func (s *ItineraryService) checkContextConsistency(itinerary string, attractions []db_models.Attraction, restaurants []db_models.Restaurant, snippets []utils.WebSnippet) {
	lower := strings.ToLower(itinerary)

	total := 0
	cited := 0
	countName := func(name string) {
		if name == "" {
			return
		}
		total++
		if strings.Contains(lower, strings.ToLower(name)) {
			cited++
		}
	}
	for _, a := range attractions {
		countName(a.Name)
	}
	for _, r := range restaurants {
		countName(r.Name)
	}
	for _, t := range snippets {
		countName(t.Title)
	}

	if total > 0 && cited == 0 {
		s.logger.Warn("generated itinerary cites no names from the retrieved context",
			zap.Int("context_items", total))
		return
	}
	s.logger.Debug("context consistency check",
		zap.Int("context_items", total),
		zap.Int("cited", cited))
}

func buildItineraryResponse(req request_models.TripRequest, itinerary string, attractions []db_models.Attraction, restaurants []db_models.Restaurant, snippets []utils.WebSnippet) *response_models.ItineraryResponse {
	attractionSummaries := make([]response_models.AttractionSummary, 0, len(attractions))
	for _, a := range attractions {
		attractionSummaries = append(attractionSummaries, response_models.AttractionSummary{
			ID:          a.ID,
			Name:        a.Name,
			Picture:     a.Picture,
			Rating:      a.Rating,
			Description: Truncate(a.Description, responseDescLimit),
			Categories:  a.Categories,
		})
	}

	restaurantSummaries := make([]response_models.RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		restaurantSummaries = append(restaurantSummaries, response_models.RestaurantSummary{
			ID:       r.ID,
			Name:     r.Name,
			Picture:  r.Picture,
			Rating:   r.Rating,
			Cuisines: r.Cuisines,
		})
	}

	return &response_models.ItineraryResponse{
		Success:     true,
		Itinerary:   itinerary,
		Destination: req.Destination,
		DaysCount:   req.DaysCount,
		Attractions: attractionSummaries,
		Restaurants: restaurantSummaries,
		Sources: response_models.SourceCounts{
			DatabaseAttractions: len(attractions),
			DatabaseRestaurants: len(restaurants),
			WebSources:          len(snippets),
		},
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
