package routers

import (
	"caremarket-service/internal/app/delivery/http/controllers"
	"caremarket-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMessageRoutes(router chi.Router, middlewares *middlewares.Middlewares, limiter *middlewares.RateLimiter, messageController *controllers.MessageController) {
	router.With(limiter.Limit, middlewares.Authenticate).Post("/", messageController.SendMessage)
	router.With(middlewares.Authenticate).Get("/{peer_id}", messageController.ListConversation)
}

func attachTranslationRoutes(router chi.Router, translationController *controllers.TranslationController) {
	router.Get("/{locale}", translationController.GetTranslations)
}
