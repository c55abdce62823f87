package controllers

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/dto/responses"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MessageController struct {
	Log            *zap.Logger
	MessageUsecase contracts.MessageUsecase
}

var (
	messageControllerInstance *MessageController
	onceMessageController     sync.Once
)

func NewMessageController(logger *zap.Logger, messageUsecase contracts.MessageUsecase) *MessageController {
	onceMessageController.Do(func() {
		messageControllerInstance = &MessageController{
			Log:            logger,
			MessageUsecase: messageUsecase,
		}
	})
	return messageControllerInstance
}

func (ctrl *MessageController) SendMessage(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MessageController.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sub, ok := identitySub(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.SendMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MessageController.SendMessage error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sender identity is checked on the raw payload before anything else.
	if request.SenderID != sub {
		ctrl.Log.Warn("MessageController.SendMessage sender does not match identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSenderIDKey, request.SenderID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrModerationIdentityMismatch())
		return
	}
	utils.SanitizeSendMessageRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	message, err := ctrl.MessageUsecase.SendMessage(ctx, &models.MessageInput{
		SenderID:    request.SenderID,
		RecipientID: request.RecipientID,
		Content:     request.Content,
	}, sub)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "MessageController.SendMessage", requestID, err)
		return
	}

	ctrl.Log.Info("MessageController.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSenderIDKey, message.SenderID),
		zap.String(constvars.LoggingRecipientIDKey, message.RecipientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSuccessSendMessage, message.ConvertIntoResponse())
}

func (ctrl *MessageController) ListConversation(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MessageController.ListConversation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sub, ok := identitySub(ctrl.Log, w, r)
	if !ok {
		return
	}
	peerID := chi.URLParam(r, constvars.URLParamPeerID)
	limit := utils.ParseLimit(r, constvars.DefaultConversationCap, constvars.MaxConversationCap)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	messages, err := ctrl.MessageUsecase.ListConversation(ctx, sub, peerID, limit)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "MessageController.ListConversation", requestID, err)
		return
	}

	result := make([]responses.Message, 0, len(messages))
	for _, message := range messages {
		result = append(result, message.ConvertIntoResponse())
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessGetConversation, result)
}
