package bookings

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/queries"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockBookingRepository struct{ mock.Mock }

func (m *mockBookingRepository) FindActiveByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, providerID, date)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepository) FindActiveByProviderInRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.Booking, error) {
	args := m.Called(ctx, providerID, fromDate, toDate)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepository) FindByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Booking, error) {
	args := m.Called(ctx, sessionID)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepository) SetCheckoutSession(ctx context.Context, bookingID, sessionID string) error {
	return m.Called(ctx, bookingID, sessionID).Error(0)
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, bookingID, status string) error {
	return m.Called(ctx, bookingID, status).Error(0)
}

type mockAvailabilityRepository struct{ mock.Mock }

func (m *mockAvailabilityRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.AvailabilityRecord, error) {
	args := m.Called(ctx, providerID)
	records, _ := args.Get(0).([]models.AvailabilityRecord)
	return records, args.Error(1)
}

func (m *mockAvailabilityRepository) FindByProviderIDAndDateRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.AvailabilityRecord, error) {
	args := m.Called(ctx, providerID, fromDate, toDate)
	records, _ := args.Get(0).([]models.AvailabilityRecord)
	return records, args.Error(1)
}

func (m *mockAvailabilityRepository) UpsertMany(ctx context.Context, records []models.AvailabilityRecord) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *mockAvailabilityRepository) DeleteOnDate(ctx context.Context, providerID, date string, times []string) (int64, error) {
	args := m.Called(ctx, providerID, date, times)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAvailabilityRepository) DistinctProviderIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type mockProfileRepository struct{ mock.Mock }

func (m *mockProfileRepository) FindByID(ctx context.Context, profileID string) (*models.ProviderProfile, error) {
	args := m.Called(ctx, profileID)
	profile, _ := args.Get(0).(*models.ProviderProfile)
	return profile, args.Error(1)
}

func (m *mockProfileRepository) FindFirstByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*models.ProviderProfile)
	return profile, args.Error(1)
}

func (m *mockProfileRepository) Search(ctx context.Context, filter queries.Filter, page, pageSize int) ([]models.ProviderProfile, int, error) {
	args := m.Called(ctx, filter, page, pageSize)
	profiles, _ := args.Get(0).([]models.ProviderProfile)
	return profiles, args.Int(1), args.Error(2)
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile *models.ProviderProfile) (*models.ProviderProfile, error) {
	args := m.Called(ctx, profile)
	saved, _ := args.Get(0).(*models.ProviderProfile)
	return saved, args.Error(1)
}

func (m *mockProfileRepository) UpdateAvailability(ctx context.Context, profileID string, availability []string) error {
	return m.Called(ctx, profileID, availability).Error(0)
}

func (m *mockProfileRepository) UpdatePhotoObject(ctx context.Context, profileID, photoObject string) error {
	return m.Called(ctx, profileID, photoObject).Error(0)
}

type mockPaymentGateway struct{ mock.Mock }

func (m *mockPaymentGateway) CreateCheckoutSession(ctx context.Context, input *models.CheckoutSessionInput) (*models.CheckoutSession, error) {
	args := m.Called(ctx, input)
	session, _ := args.Get(0).(*models.CheckoutSession)
	return session, args.Error(1)
}

func (m *mockPaymentGateway) ParseWebhookEvent(payload []byte, signature string) (*models.PaymentEvent, error) {
	args := m.Called(payload, signature)
	event, _ := args.Get(0).(*models.PaymentEvent)
	return event, args.Error(1)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) PublishJSON(ctx context.Context, routingKey string, payload interface{}) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}

type mockLocker struct{ mock.Mock }

func (m *mockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *mockLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}
