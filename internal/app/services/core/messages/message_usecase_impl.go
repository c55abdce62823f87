package messages

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type messageUsecase struct {
	MessageRepository contracts.MessageRepository
	EventPublisher    contracts.EventPublisher
	Moderator         *Moderator
	Log               *zap.Logger
}

func NewMessageUsecase(
	messageRepository contracts.MessageRepository,
	eventPublisher contracts.EventPublisher,
	moderator *Moderator,
	logger *zap.Logger,
) contracts.MessageUsecase {
	return &messageUsecase{
		MessageRepository: messageRepository,
		EventPublisher:    eventPublisher,
		Moderator:         moderator,
		Log:               logger,
	}
}

func (uc *messageUsecase) SendMessage(ctx context.Context, input *models.MessageInput, identitySub string) (*models.Message, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("messageUsecase.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSenderIDKey, input.SenderID),
		zap.String(constvars.LoggingRecipientIDKey, input.RecipientID),
	)

	moderated, err := uc.Moderator.Moderate(*input, identitySub)
	if err != nil {
		fields := []zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeModerationRejects),
			zap.Error(err),
		}
		if errors.Is(err, exceptions.ErrIdentityMismatch) {
			fields = append(fields, zap.String(constvars.LoggingIdentitySubKey, identitySub))
		}
		uc.Log.Info("messageUsecase.SendMessage rejected by moderation", fields...)
		return nil, err
	}

	message := &models.Message{
		ID:          uuid.NewString(),
		SenderID:    moderated.SenderID,
		RecipientID: moderated.RecipientID,
		Content:     moderated.Content,
		Timestamp:   moderated.Timestamp,
	}
	if err := uc.MessageRepository.Create(ctx, message); err != nil {
		uc.Log.Error("messageUsecase.SendMessage error persisting message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.EventPublisher.PublishJSON(ctx, constvars.EventRoutingKeyMessageCreated, models.MessageCreatedEvent{
		MessageID:   message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Timestamp:   message.Timestamp,
	})
	if err != nil {
		uc.Log.Warn("messageUsecase.SendMessage error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("messageUsecase.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return message, nil
}

func (uc *messageUsecase) ListConversation(ctx context.Context, identitySub, peerID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = constvars.DefaultConversationCap
	}
	if limit > constvars.MaxConversationCap {
		limit = constvars.MaxConversationCap
	}

	messages, err := uc.MessageRepository.FindConversation(ctx, identitySub, peerID, limit)
	if err != nil {
		uc.Log.Error("messageUsecase.ListConversation error fetching messages",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return messages, nil
}
