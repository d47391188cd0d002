package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// travelDomains is the allowlist used for every web search so that fallback
// evidence is biased toward established travel-content sites.
var travelDomains = []string{
	"tripadvisor.com",
	"lonelyplanet.com",
	"viator.com",
	"booking.com",
	"yelp.com",
}

const (
	tavilyEndpoint   = "https://api.tavily.com/search"
	tavilyMaxResults = 10
	tavilyTimeout    = 15 * time.Second
)

// WebSnippet is one web search result used as fallback evidence.
type WebSnippet struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// WebSearchClientInterface is the outbound boundary to the web search
// provider. Enabled reports whether an API key is configured; Search returns
// at most tavilyMaxResults snippets restricted to the travel domain allowlist.
type WebSearchClientInterface interface {
	Enabled() bool
	Search(ctx context.Context, query string) ([]WebSnippet, error)
}

type TavilyClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTavilyClient(apiKey string, logger *zap.Logger) *TavilyClient {
	return &TavilyClient{
		apiKey:     apiKey,
		endpoint:   tavilyEndpoint,
		httpClient: &http.Client{Timeout: tavilyTimeout},
		logger:     logger,
	}
}

func (c *TavilyClient) Enabled() bool {
	return c.apiKey != ""
}

type tavilyRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	IncludeAnswer  bool     `json:"include_answer"`
	IncludeDomains []string `json:"include_domains"`
	MaxResults     int      `json:"max_results"`
}

type tavilyResponse struct {
	Results []WebSnippet `json:"results"`
}

func (c *TavilyClient) Search(ctx context.Context, query string) ([]WebSnippet, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("%w: no API key configured", ErrWebSearchFailed)
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "advanced",
		IncludeAnswer:  true,
		IncludeDomains: travelDomains,
		MaxResults:     tavilyMaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebSearchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebSearchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("tavily request failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrWebSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("tavily returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail))
		return nil, fmt.Errorf("%w: status %d", ErrWebSearchFailed, resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebSearchFailed, err)
	}

	return parsed.Results, nil
}
