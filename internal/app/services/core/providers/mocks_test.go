package providers

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/queries"
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

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

type mockAvailabilitySyncer struct{ mock.Mock }

func (m *mockAvailabilitySyncer) SyncAvailabilityToProfile(ctx context.Context, providerID string) error {
	return m.Called(ctx, providerID).Error(0)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error) {
	args := m.Called(ctx, reader, size, objectName, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetObjectURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}
