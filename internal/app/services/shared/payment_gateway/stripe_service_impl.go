package payment_gateway

import (
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

var errWebhookSecretMissing = errors.New("stripe webhook secret is not configured")

type stripeService struct {
	api           *client.API
	webhookSecret string
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGateway {
	api := &client.API{}
	api.Init(internalConfig.Stripe.SecretKey, nil)
	return &stripeService{
		api:           api,
		webhookSecret: internalConfig.Stripe.WebhookSecret,
	}
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, input *models.CheckoutSessionInput) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(input.SuccessURL),
		CancelURL:         stripe.String(input.CancelURL),
		ClientReferenceID: stripe.String(input.ClientID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(input.Currency),
					UnitAmount: stripe.Int64(input.AmountTotal),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(input.ProviderName),
						Description: stripe.String(input.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if input.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(input.CustomerEmail)
	}
	params.AddMetadata(constvars.StripeMetadataBookingID, input.BookingID)
	params.Context = ctx

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, exceptions.ErrPaymentCreateSession(err)
	}
	return &models.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (s *stripeService) ParseWebhookEvent(payload []byte, signature string) (*models.PaymentEvent, error) {
	if s.webhookSecret == "" {
		return nil, exceptions.ErrWebhookSignature(errWebhookSecretMissing)
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, exceptions.ErrWebhookSignature(err)
	}

	paymentEvent := &models.PaymentEvent{Type: string(event.Type)}
	switch event.Type {
	case constvars.StripeEventCheckoutCompleted, constvars.StripeEventCheckoutExpired:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, exceptions.ErrWebhookPayload(err)
		}
		paymentEvent.CheckoutSessionID = session.ID
		paymentEvent.BookingID = session.Metadata[constvars.StripeMetadataBookingID]
	}
	return paymentEvent, nil
}
