package request_models

// SearchRequest is the catalog search input. Either Query or Destination must
// be set. Type selects which tables to search: "attractions", "restaurants"
// or "both" (default).
type SearchRequest struct {
	Query             string   `json:"query"`
	Type              string   `json:"type"`
	Destination       string   `json:"destination"`
	Categories        []string `json:"categories"`
	Cuisines          []string `json:"cuisines"`
	MinRating         float64  `json:"minRating"`
	Limit             int      `json:"limit"`
	UseSemanticSearch *bool    `json:"useSemanticSearch"`
}

func (r *SearchRequest) Normalize() {
	if r.Type == "" {
		r.Type = "both"
	}
	if r.Limit <= 0 || r.Limit > 50 {
		r.Limit = 10
	}
}

func (r *SearchRequest) SemanticEnabled() bool {
	return r.UseSemanticSearch == nil || *r.UseSemanticSearch
}

func (r *SearchRequest) WantsAttractions() bool {
	return r.Type == "both" || r.Type == "attractions"
}

func (r *SearchRequest) WantsRestaurants() bool {
	return r.Type == "both" || r.Type == "restaurants"
}
