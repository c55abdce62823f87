package routers

import (
	"caremarket-service/internal/app/delivery/http/controllers"
	"caremarket-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Post("/checkout", bookingController.Checkout)
}

// Webhooks authenticate through the payload signature, not a bearer token.
func attachWebhookRoutes(router chi.Router, webhookController *controllers.WebhookController) {
	router.Post("/stripe", webhookController.HandleStripeEvent)
}
