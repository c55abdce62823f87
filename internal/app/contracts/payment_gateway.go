package contracts

import (
	"caremarket-service/internal/app/models"
	"context"
)

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input *models.CheckoutSessionInput) (*models.CheckoutSession, error)
	ParseWebhookEvent(payload []byte, signature string) (*models.PaymentEvent, error)
}
