package catalog_fx

import (
	"go.uber.org/fx"

	"tourgether/internal/api/controllers"
	"tourgether/internal/repositories"
	"tourgether/internal/services"
)

var Module = fx.Provide(
	repositories.NewAttractionRepository,
	repositories.NewRestaurantRepository,
	services.NewRetrievalService,
	services.NewSearchService,
	services.NewImportService,
	controllers.NewSearchController,
	controllers.NewImportController,
)
