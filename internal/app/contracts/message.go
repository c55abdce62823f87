package contracts

import (
	"caremarket-service/internal/app/models"
	"context"
)

type ProfanityChecker interface {
	IsProfane(text string) bool
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindConversation(ctx context.Context, userID, peerID string, limit int) ([]models.Message, error)
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, input *models.MessageInput, identitySub string) (*models.Message, error)
	ListConversation(ctx context.Context, identitySub, peerID string, limit int) ([]models.Message, error)
}
