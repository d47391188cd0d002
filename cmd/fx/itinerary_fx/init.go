package itinerary_fx

import (
	"go.uber.org/fx"

	"tourgether/internal/api/controllers"
	"tourgether/internal/services"
)

var Module = fx.Provide(
	services.NewItineraryService,
	controllers.NewItineraryController,
)
