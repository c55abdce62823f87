package availability

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/queries"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

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

// inlineTransactor runs fn without a session and reports its error.
type inlineTransactor struct {
	calls int
}

func (tx *inlineTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}
