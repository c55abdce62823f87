package providers

import (
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/queries"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type providerFixture struct {
	profiles *mockProfileRepository
	syncer   *mockAvailabilitySyncer
	storage  *mockStorage
	usecase  *providerUsecase
}

var fixedNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newProviderFixture() *providerFixture {
	profiles := new(mockProfileRepository)
	syncer := new(mockAvailabilitySyncer)
	storage := new(mockStorage)
	cfg := &config.InternalConfig{}
	cfg.Minio.PreSignedURLObjectExpiryInMinutes = 15
	cfg.Minio.ProfilePhotoMaxUploadSizeInMB = 1
	return &providerFixture{
		profiles: profiles,
		syncer:   syncer,
		storage:  storage,
		usecase: &providerUsecase{
			ProfileRepository:  profiles,
			AvailabilitySyncer: syncer,
			Storage:            storage,
			InternalConfig:     cfg,
			Log:                zap.NewNop(),
			now:                func() time.Time { return fixedNow },
		},
	}
}

func TestSearchProviders(t *testing.T) {
	ctx := context.Background()

	t.Run("Presigns Photos", func(t *testing.T) {
		fx := newProviderFixture()
		request := &requests.SearchProviders{Specialty: "physio", Pagination: requests.Pagination{Page: 2, PageSize: 10}}
		fx.profiles.On("Search", ctx, queries.SearchProviders(request), 2, 10).Return([]models.ProviderProfile{
			{ID: "prof-1", UserID: "u1", PhotoObject: "providers/photos/a.jpg", Availability: []string{"2024-05-01:09"}},
			{ID: "prof-2", UserID: "u2"},
		}, 12, nil)
		fx.storage.On("GetObjectURL", ctx, "providers/photos/a.jpg", 15*time.Minute).Return("https://cdn/a.jpg", nil)

		result, total, err := fx.usecase.SearchProviders(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, 12, total)
		require.Len(t, result, 2)
		assert.Equal(t, "https://cdn/a.jpg", result[0].PhotoURL)
		assert.Empty(t, result[1].PhotoURL)
		assert.Equal(t, []string{}, result[1].Availability)
		fx.storage.AssertNumberOfCalls(t, "GetObjectURL", 1)
	})

	t.Run("Presign Failure Drops The URL", func(t *testing.T) {
		fx := newProviderFixture()
		request := &requests.SearchProviders{}
		fx.profiles.On("Search", ctx, mock.Anything, 0, 0).Return([]models.ProviderProfile{
			{ID: "prof-1", PhotoObject: "providers/photos/a.jpg"},
		}, 1, nil)
		fx.storage.On("GetObjectURL", ctx, mock.Anything, mock.Anything).Return("", errors.New("minio down"))

		result, _, err := fx.usecase.SearchProviders(ctx, request)

		require.NoError(t, err)
		assert.Empty(t, result[0].PhotoURL)
	})

	t.Run("Repository Failure", func(t *testing.T) {
		fx := newProviderFixture()
		fx.profiles.On("Search", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, 0, errors.New("mongo down"))

		_, _, err := fx.usecase.SearchProviders(ctx, &requests.SearchProviders{})
		assert.EqualError(t, err, "mongo down")
	})
}

func TestFindProviderByID(t *testing.T) {
	ctx := context.Background()

	t.Run("By User ID", func(t *testing.T) {
		fx := newProviderFixture()
		fx.profiles.On("FindFirstByUserID", ctx, "u1").Return(&models.ProviderProfile{ID: "prof-1", UserID: "u1", Name: "Ana"}, nil)

		profile, err := fx.usecase.FindProviderByID(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "Ana", profile.Name)
		fx.profiles.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Falls Back To Profile ID", func(t *testing.T) {
		fx := newProviderFixture()
		fx.profiles.On("FindFirstByUserID", ctx, "prof-1").Return(nil, nil)
		fx.profiles.On("FindByID", ctx, "prof-1").Return(&models.ProviderProfile{ID: "prof-1", UserID: "u1"}, nil)

		profile, err := fx.usecase.FindProviderByID(ctx, "prof-1")

		require.NoError(t, err)
		assert.Equal(t, "u1", profile.UserID)
	})

	t.Run("Not Found", func(t *testing.T) {
		fx := newProviderFixture()
		fx.profiles.On("FindFirstByUserID", ctx, "ghost").Return(nil, nil)
		fx.profiles.On("FindByID", ctx, "ghost").Return(nil, nil)

		_, err := fx.usecase.FindProviderByID(ctx, "ghost")
		assert.ErrorIs(t, err, exceptions.ErrNotFound)
	})
}

func TestUpsertMyProfile(t *testing.T) {
	ctx := context.Background()
	request := &requests.UpsertProviderProfile{Name: "Ana", Specialty: "physio", Bio: "10 years", HourlyRate: 9000, Currency: "usd"}

	t.Run("Creates A New Profile Seeded From Records", func(t *testing.T) {
		fx := newProviderFixture()
		isNewProfile := mock.MatchedBy(func(p *models.ProviderProfile) bool {
			return p.ID != "" && p.UserID == "u1" && p.CreatedAt.Equal(fixedNow) && p.Name == "Ana"
		})
		fx.profiles.On("FindFirstByUserID", ctx, "u1").Return(nil, nil)
		fx.profiles.On("Upsert", ctx, isNewProfile).Return(&models.ProviderProfile{
			ID:           "prof-new",
			UserID:       "u1",
			Name:         "Ana",
			HourlyRate:   9000,
			Availability: []string{},
		}, nil)
		fx.syncer.On("SyncAvailabilityToProfile", ctx, "u1").Return(nil)
		fx.profiles.On("FindByID", ctx, "prof-new").Return(&models.ProviderProfile{
			ID:           "prof-new",
			UserID:       "u1",
			Name:         "Ana",
			HourlyRate:   9000,
			Availability: []string{"2024-05-02:09"},
		}, nil)

		profile, err := fx.usecase.UpsertMyProfile(ctx, "u1", request)

		require.NoError(t, err)
		assert.Equal(t, "Ana", profile.Name)
		assert.Equal(t, int64(9000), profile.HourlyRate)
		assert.Equal(t, []string{"2024-05-02:09"}, profile.Availability)
		fx.profiles.AssertExpectations(t)
		fx.syncer.AssertExpectations(t)
	})

	t.Run("Seed Failure Keeps The New Profile", func(t *testing.T) {
		fx := newProviderFixture()
		fx.profiles.On("FindFirstByUserID", ctx, "u1").Return(nil, nil)
		fx.profiles.On("Upsert", ctx, mock.Anything).Return(&models.ProviderProfile{ID: "prof-new", UserID: "u1", Name: "Ana", Availability: []string{}}, nil)
		fx.syncer.On("SyncAvailabilityToProfile", ctx, "u1").Return(exceptions.ErrResourceNotFound("availability"))

		profile, err := fx.usecase.UpsertMyProfile(ctx, "u1", request)

		require.NoError(t, err)
		assert.Equal(t, "prof-new", profile.ID)
		assert.Empty(t, profile.Availability)
		fx.profiles.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Update Returns Stored Availability", func(t *testing.T) {
		fx := newProviderFixture()
		created := fixedNow.Add(-48 * time.Hour)
		existing := &models.ProviderProfile{
			ID:           "prof-1",
			UserID:       "u1",
			Name:         "Old",
			PhotoObject:  "providers/photos/a.jpg",
			Availability: []string{"2024-05-01:09"},
			TimeModel:    models.TimeModel{CreatedAt: created, UpdatedAt: created},
		}
		fx.profiles.On("FindFirstByUserID", ctx, "u1").Return(existing, nil)
		// A concurrent resync committed after the read; the stored document wins.
		fx.profiles.On("Upsert", ctx, existing).Return(&models.ProviderProfile{
			ID:           "prof-1",
			UserID:       "u1",
			Name:         "Ana",
			PhotoObject:  "providers/photos/a.jpg",
			Availability: []string{"2024-05-03:10"},
		}, nil)
		fx.storage.On("GetObjectURL", ctx, "providers/photos/a.jpg", 15*time.Minute).Return("https://cdn/a.jpg", nil)

		profile, err := fx.usecase.UpsertMyProfile(ctx, "u1", request)

		require.NoError(t, err)
		assert.Equal(t, "prof-1", profile.ID)
		assert.Equal(t, []string{"2024-05-03:10"}, profile.Availability)
		assert.Equal(t, "https://cdn/a.jpg", profile.PhotoURL)
		assert.Equal(t, created, existing.CreatedAt)
		assert.Equal(t, fixedNow, existing.UpdatedAt)
		fx.syncer.AssertNotCalled(t, "SyncAvailabilityToProfile", mock.Anything, mock.Anything)
	})
}

func TestUploadMyPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fx := newProviderFixture()
		body := strings.NewReader("fake png")
		fx.profiles.On("FindFirstByUserID", ctx, "u1").Return(&models.ProviderProfile{ID: "prof-1", UserID: "u1"}, nil)
		isPhotoName := mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, constvars.ProfilePhotoDir+"/photo_u1_") && strings.HasSuffix(name, ".png")
		})
		fx.storage.On("UploadObject", ctx, body, int64(8), isPhotoName, constvars.MIMEImagePNG).Return("", nil)
		fx.profiles.On("UpdatePhotoObject", ctx, "prof-1", isPhotoName).Return(nil)
		fx.storage.On("GetObjectURL", ctx, isPhotoName, 15*time.Minute).Return("https://cdn/photo.png", nil)

		result, err := fx.usecase.UploadMyPhoto(ctx, "u1", body, 8, constvars.MIMEImagePNG)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/photo.png", result.URL)
		assert.True(t, strings.HasSuffix(result.ObjectName, ".png"))
		fx.profiles.AssertExpectations(t)
		fx.storage.AssertExpectations(t)
	})

	t.Run("Unsupported Content Type", func(t *testing.T) {
		fx := newProviderFixture()

		_, err := fx.usecase.UploadMyPhoto(ctx, "u1", strings.NewReader("gif"), 3, "image/gif")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		fx.storage.AssertNotCalled(t, "UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Too Large", func(t *testing.T) {
		fx := newProviderFixture()

		_, err := fx.usecase.UploadMyPhoto(ctx, "u1", strings.NewReader(""), 2<<20, constvars.MIMEImageJPEG)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusRequestEntityTooBig, customErr.StatusCode)
	})

	t.Run("Requires A Profile", func(t *testing.T) {
		fx := newProviderFixture()
		fx.profiles.On("FindFirstByUserID", ctx, "u1").Return(nil, nil)

		_, err := fx.usecase.UploadMyPhoto(ctx, "u1", strings.NewReader("x"), 1, constvars.MIMEImageWEBP)

		assert.ErrorIs(t, err, exceptions.ErrNotFound)
		fx.storage.AssertNotCalled(t, "UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		fx := newProviderFixture()
		fx.profiles.On("FindFirstByUserID", ctx, "u1").Return(&models.ProviderProfile{ID: "prof-1"}, nil)
		fx.storage.On("UploadObject", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket missing"))

		_, err := fx.usecase.UploadMyPhoto(ctx, "u1", strings.NewReader("x"), 1, constvars.MIMEImageJPEG)

		assert.EqualError(t, err, "bucket missing")
		fx.profiles.AssertNotCalled(t, "UpdatePhotoObject", mock.Anything, mock.Anything, mock.Anything)
	})
}
