package controllers

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type WebhookController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *WebhookController {
	onceWebhookController.Do(func() {
		webhookControllerInstance = &WebhookController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
	})
	return webhookControllerInstance
}

// HandleStripeEvent needs the raw body because the signature covers the
// exact bytes that were sent.
func (ctrl *WebhookController) HandleStripeEvent(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("WebhookController.HandleStripeEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrWebhookPayload(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.BookingUsecase.HandlePaymentWebhook(ctx, payload, r.Header.Get(constvars.HeaderStripeSignature)); err != nil {
		writeUsecaseError(ctrl.Log, w, "WebhookController.HandleStripeEvent", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessWebhookHandled, nil)
}
