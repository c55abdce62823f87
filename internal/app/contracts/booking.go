package contracts

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/dto/responses"
	"context"
)

type BookingRepository interface {
	FindActiveByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	FindActiveByProviderInRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.Booking, error)
	FindByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	SetCheckoutSession(ctx context.Context, bookingID, sessionID string) error
	UpdateStatus(ctx context.Context, bookingID, status string) error
}

type BookingUsecase interface {
	FindAvailableDurations(ctx context.Context, providerID, date, startTime string, candidates []float64) ([]float64, error)
	BuildWeekTimeSlots(ctx context.Context, providerID, weekStart string) ([]models.DayTimeSlots, error)
	Checkout(ctx context.Context, clientID string, request *requests.Checkout) (*responses.CheckoutSession, error)
	HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error
}
