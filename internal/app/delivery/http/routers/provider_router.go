package routers

import (
	"caremarket-service/internal/app/delivery/http/controllers"
	"caremarket-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	providerController *controllers.ProviderController,
	availabilityController *controllers.AvailabilityController,
	bookingController *controllers.BookingController,
) {
	router.Get("/", providerController.SearchProviders)

	router.With(middlewares.Authenticate).Put("/me", providerController.UpsertMyProfile)
	router.With(middlewares.Authenticate).Put("/me/photo", providerController.UploadMyPhoto)
	router.With(middlewares.Authenticate).Put("/me/availability", availabilityController.SetMyAvailability)
	router.With(middlewares.Authenticate).Delete("/me/availability", availabilityController.DeleteMyAvailability)

	router.Get("/{provider_id}", providerController.FindProviderByID)
	router.Get("/{provider_id}/availability", availabilityController.GetGroupedAvailability)
	router.With(middlewares.Authenticate).Post("/{provider_id}/availability/sync", availabilityController.SyncAvailability)
	router.Get("/{provider_id}/week", bookingController.GetWeekTimeSlots)
	router.Get("/{provider_id}/durations", bookingController.FindAvailableDurations)
}
