package response_models

import "tourgether/internal/models/db_models"

type SearchResponse struct {
	Attractions []db_models.Attraction `json:"attractions"`
	Restaurants []db_models.Restaurant `json:"restaurants"`
	Semantic    bool                   `json:"semantic"`
}

type ImportSummary struct {
	AttractionsImported int      `json:"attractionsImported"`
	RestaurantsImported int      `json:"restaurantsImported"`
	Errors              []string `json:"errors,omitempty"`
}
