package routers

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/dto/responses"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type mockProviderUsecase struct{ mock.Mock }

func (m *mockProviderUsecase) SearchProviders(ctx context.Context, request *requests.SearchProviders) ([]responses.ProviderProfile, int, error) {
	args := m.Called(ctx, request)
	profiles, _ := args.Get(0).([]responses.ProviderProfile)
	return profiles, args.Int(1), args.Error(2)
}

func (m *mockProviderUsecase) FindProviderByID(ctx context.Context, providerID string) (*responses.ProviderProfile, error) {
	args := m.Called(ctx, providerID)
	profile, _ := args.Get(0).(*responses.ProviderProfile)
	return profile, args.Error(1)
}

func (m *mockProviderUsecase) UpsertMyProfile(ctx context.Context, userID string, request *requests.UpsertProviderProfile) (*responses.ProviderProfile, error) {
	args := m.Called(ctx, userID, request)
	profile, _ := args.Get(0).(*responses.ProviderProfile)
	return profile, args.Error(1)
}

func (m *mockProviderUsecase) UploadMyPhoto(ctx context.Context, userID string, reader io.Reader, size int64, contentType string) (*responses.UploadPhoto, error) {
	args := m.Called(ctx, userID, reader, size, contentType)
	photo, _ := args.Get(0).(*responses.UploadPhoto)
	return photo, args.Error(1)
}

type mockAvailabilityUsecase struct{ mock.Mock }

func (m *mockAvailabilityUsecase) SyncAvailabilityToProfile(ctx context.Context, providerID string) error {
	return m.Called(ctx, providerID).Error(0)
}

func (m *mockAvailabilityUsecase) GetProviderAvailabilityGrouped(ctx context.Context, providerID string) (map[string][]string, error) {
	args := m.Called(ctx, providerID)
	grouped, _ := args.Get(0).(map[string][]string)
	return grouped, args.Error(1)
}

func (m *mockAvailabilityUsecase) SetAvailability(ctx context.Context, providerID string, records []models.AvailabilityRecord) ([]string, error) {
	args := m.Called(ctx, providerID, records)
	availability, _ := args.Get(0).([]string)
	return availability, args.Error(1)
}

func (m *mockAvailabilityUsecase) DeleteAvailability(ctx context.Context, providerID, date string, times []string) ([]string, error) {
	args := m.Called(ctx, providerID, date, times)
	availability, _ := args.Get(0).([]string)
	return availability, args.Error(1)
}

func (m *mockAvailabilityUsecase) SyncAllProviders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockBookingUsecase struct{ mock.Mock }

func (m *mockBookingUsecase) FindAvailableDurations(ctx context.Context, providerID, date, startTime string, candidates []float64) ([]float64, error) {
	args := m.Called(ctx, providerID, date, startTime, candidates)
	durations, _ := args.Get(0).([]float64)
	return durations, args.Error(1)
}

func (m *mockBookingUsecase) BuildWeekTimeSlots(ctx context.Context, providerID, weekStart string) ([]models.DayTimeSlots, error) {
	args := m.Called(ctx, providerID, weekStart)
	days, _ := args.Get(0).([]models.DayTimeSlots)
	return days, args.Error(1)
}

func (m *mockBookingUsecase) Checkout(ctx context.Context, clientID string, request *requests.Checkout) (*responses.CheckoutSession, error) {
	args := m.Called(ctx, clientID, request)
	session, _ := args.Get(0).(*responses.CheckoutSession)
	return session, args.Error(1)
}

func (m *mockBookingUsecase) HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.Called(ctx, payload, signature).Error(0)
}

type mockMessageUsecase struct{ mock.Mock }

func (m *mockMessageUsecase) SendMessage(ctx context.Context, input *models.MessageInput, identitySub string) (*models.Message, error) {
	args := m.Called(ctx, input, identitySub)
	message, _ := args.Get(0).(*models.Message)
	return message, args.Error(1)
}

func (m *mockMessageUsecase) ListConversation(ctx context.Context, identitySub, peerID string, limit int) ([]models.Message, error) {
	args := m.Called(ctx, identitySub, peerID, limit)
	messages, _ := args.Get(0).([]models.Message)
	return messages, args.Error(1)
}

type mockTranslationUsecase struct{ mock.Mock }

func (m *mockTranslationUsecase) GetTranslations(ctx context.Context, locale string, keys []string) (map[string]string, error) {
	args := m.Called(ctx, locale, keys)
	values, _ := args.Get(0).(map[string]string)
	return values, args.Error(1)
}
