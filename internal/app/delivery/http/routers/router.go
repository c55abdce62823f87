package routers

import (
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/delivery/http/controllers"
	"caremarket-service/internal/app/delivery/http/middlewares"
	"caremarket-service/internal/pkg/constvars"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	providerController *controllers.ProviderController,
	availabilityController *controllers.AvailabilityController,
	bookingController *controllers.BookingController,
	webhookController *controllers.WebhookController,
	messageController *controllers.MessageController,
	translationController *controllers.TranslationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins(internalConfig.App.FrontendDomain),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if internalConfig.App.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	messageLimiter := middlewares.MessageRateLimiter()

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/providers", func(r chi.Router) {
				attachProviderRoutes(r, middlewares, providerController, availabilityController, bookingController)
			})

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Route("/webhooks", func(r chi.Router) {
				attachWebhookRoutes(r, webhookController)
			})

			r.Route("/messages", func(r chi.Router) {
				attachMessageRoutes(r, middlewares, messageLimiter, messageController)
			})

			r.Route("/translations", func(r chi.Router) {
				attachTranslationRoutes(r, translationController)
			})
		})
	})
}

func allowedOrigins(frontendDomain string) []string {
	if frontendDomain == "" {
		return []string{"*"}
	}
	return []string{frontendDomain}
}
