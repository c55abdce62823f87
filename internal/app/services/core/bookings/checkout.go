package bookings

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/dto/responses"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Checkout reserves a slot as Pending Payment and opens a hosted checkout
// session for it. The per provider and date lock keeps two clients from
// passing the overlap check for the same slot at once.
func (uc *bookingUsecase) Checkout(ctx context.Context, clientID string, request *requests.Checkout) (*responses.CheckoutSession, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.Checkout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	profile, err := uc.ProfileRepository.FindFirstByUserID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrResourceNotFound("provider profile")
	}

	lockKey := checkoutLockKey(request.ProviderID, request.Date)
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, checkoutLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("bookingUsecase.Checkout slot is being booked concurrently",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, lockKey),
		)
		return nil, exceptions.ErrSlotConflict()
	}
	defer uc.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)

	existing, err := uc.BookingRepository.FindActiveByProviderAndDate(ctx, request.ProviderID, request.Date)
	if err != nil {
		return nil, err
	}
	free, err := FilterNonOverlappingDurations(request.Date, request.Time, []float64{request.Duration}, existing)
	if err != nil {
		return nil, exceptions.ErrTimeFormat(err)
	}
	if len(free) == 0 {
		uc.Log.Info("bookingUsecase.Checkout slot overlaps an existing booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		)
		return nil, exceptions.ErrSlotConflict()
	}

	booking := uc.newBooking(clientID, request.ProviderID, request.Date, request.Time, request.Duration, profile)
	if err := uc.BookingRepository.Create(ctx, booking); err != nil {
		return nil, err
	}

	successURL := request.SuccessURL
	if successURL == "" {
		successURL = uc.InternalConfig.Stripe.SuccessURL
	}
	cancelURL := request.CancelURL
	if cancelURL == "" {
		cancelURL = uc.InternalConfig.Stripe.CancelURL
	}

	session, err := uc.PaymentGateway.CreateCheckoutSession(ctx, &models.CheckoutSessionInput{
		BookingID:    booking.ID,
		ClientID:     clientID,
		ProviderName: profile.Name,
		Description:  fmt.Sprintf("%s at %s for %g hour(s)", booking.Date, booking.Time, booking.Duration),
		AmountTotal:  booking.AmountTotal,
		Currency:     booking.Currency,
		SuccessURL:   successURL,
		CancelURL:    cancelURL,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.Checkout error creating checkout session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypePaymentGateway),
			zap.Error(err),
		)
		if cancelErr := uc.BookingRepository.UpdateStatus(ctx, booking.ID, constvars.BookingStatusCancelled); cancelErr != nil {
			uc.Log.Error("bookingUsecase.Checkout error releasing booking",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(cancelErr),
			)
		}
		return nil, err
	}

	if err := uc.BookingRepository.SetCheckoutSession(ctx, booking.ID, session.ID); err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.Checkout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingCheckoutSessionID, session.ID),
	)
	return &responses.CheckoutSession{
		BookingID:   booking.ID,
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

// HandlePaymentWebhook applies a verified payment event to its booking.
// Unknown event types and unknown bookings are acknowledged and ignored so
// the payment provider does not retry them.
func (uc *bookingUsecase) HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error {
	requestID := utils.GetRequestID(ctx)

	event, err := uc.PaymentGateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		uc.Log.Warn("bookingUsecase.HandlePaymentWebhook rejected event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.Log.Info("bookingUsecase.HandlePaymentWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingCheckoutSessionID, event.CheckoutSessionID),
	)

	var status, routingKey string
	switch event.Type {
	case constvars.StripeEventCheckoutCompleted:
		status, routingKey = constvars.BookingStatusPaymentCompleted, constvars.EventRoutingKeyBookingPaid
	case constvars.StripeEventCheckoutExpired:
		status, routingKey = constvars.BookingStatusCancelled, constvars.EventRoutingKeyBookingCancelled
	default:
		return nil
	}

	booking, err := uc.findWebhookBooking(ctx, event)
	if err != nil {
		return err
	}
	if booking == nil {
		uc.Log.Warn("bookingUsecase.HandlePaymentWebhook booking not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCheckoutSessionID, event.CheckoutSessionID),
		)
		return nil
	}
	if booking.BookingStatus == status {
		return nil
	}

	if err := uc.BookingRepository.UpdateStatus(ctx, booking.ID, status); err != nil {
		return err
	}

	err = uc.EventPublisher.PublishJSON(ctx, routingKey, models.BookingStatusEvent{
		BookingID:         booking.ID,
		ProviderID:        booking.ProviderID,
		ClientID:          booking.ClientID,
		Date:              booking.Date,
		Time:              booking.Time,
		Status:            status,
		CheckoutSessionID: event.CheckoutSessionID,
		OccurredAt:        uc.now().UTC(),
	})
	if err != nil {
		// the status change is already durable; downstream consumers can
		// reconcile from the bookings collection
		uc.Log.Error("bookingUsecase.HandlePaymentWebhook error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoutingKey, routingKey),
			zap.Error(err),
		)
	}

	uc.Log.Info("bookingUsecase.HandlePaymentWebhook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
	)
	return nil
}

func (uc *bookingUsecase) findWebhookBooking(ctx context.Context, event *models.PaymentEvent) (*models.Booking, error) {
	if event.CheckoutSessionID != "" {
		booking, err := uc.BookingRepository.FindByCheckoutSessionID(ctx, event.CheckoutSessionID)
		if err != nil || booking != nil {
			return booking, err
		}
	}
	if event.BookingID == "" {
		return nil, nil
	}
	return uc.BookingRepository.FindByID(ctx, event.BookingID)
}
