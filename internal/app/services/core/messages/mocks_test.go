package messages

import (
	"caremarket-service/internal/app/models"
	"context"

	"github.com/stretchr/testify/mock"
)

type mockMessageRepository struct{ mock.Mock }

func (m *mockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockMessageRepository) FindConversation(ctx context.Context, userID, peerID string, limit int) ([]models.Message, error) {
	args := m.Called(ctx, userID, peerID, limit)
	messages, _ := args.Get(0).([]models.Message)
	return messages, args.Error(1)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) PublishJSON(ctx context.Context, routingKey string, payload interface{}) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}
