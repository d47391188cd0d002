package response_models

// AttractionSummary is the catalog subset echoed back so the caller can
// render pictures and ratings without a second lookup.
type AttractionSummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Picture     string   `json:"picture"`
	Rating      *float64 `json:"rating"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

type RestaurantSummary struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Picture  string   `json:"picture"`
	Rating   *float64 `json:"rating"`
	Cuisines []string `json:"cuisines"`
}

// SourceCounts is the provenance summary: how many facts in the generation
// context came from the catalog versus live web search.
type SourceCounts struct {
	DatabaseAttractions int `json:"databaseAttractions"`
	DatabaseRestaurants int `json:"databaseRestaurants"`
	WebSources          int `json:"webSources"`
}

type ItineraryResponse struct {
	Success     bool                `json:"success"`
	Itinerary   string              `json:"itinerary"`
	Destination string              `json:"destination"`
	DaysCount   int                 `json:"daysCount"`
	Attractions []AttractionSummary `json:"attractions"`
	Restaurants []RestaurantSummary `json:"restaurants"`
	Sources     SourceCounts        `json:"sources"`
}
