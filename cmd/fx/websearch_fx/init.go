package websearch_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourgether/pkg/utils"
)

var Module = fx.Provide(ProvideWebSearchClient)

// ProvideWebSearchClient creates the Tavily fallback client. A missing
// TAVILY_API_KEY is not an error: the client reports itself as disabled and
// the orchestrator skips the web tier.
func ProvideWebSearchClient(logger *zap.Logger) utils.WebSearchClientInterface {
	apiKey := os.Getenv("TAVILY_API_KEY")
	if apiKey == "" {
		logger.Warn("TAVILY_API_KEY not set, web search fallback disabled")
	}
	return utils.NewTavilyClient(apiKey, logger)
}
