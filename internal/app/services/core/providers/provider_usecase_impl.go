package providers

import (
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/dto/responses"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/queries"
	"caremarket-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var photoExtensions = map[string]string{
	constvars.MIMEImageJPEG: ".jpg",
	constvars.MIMEImagePNG:  ".png",
	constvars.MIMEImageWEBP: ".webp",
}

type providerUsecase struct {
	ProfileRepository  contracts.ProfileRepository
	AvailabilitySyncer contracts.AvailabilitySyncer
	Storage            contracts.Storage
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	now                func() time.Time
}

func NewProviderUsecase(
	profileRepository contracts.ProfileRepository,
	availabilitySyncer contracts.AvailabilitySyncer,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	return &providerUsecase{
		ProfileRepository:  profileRepository,
		AvailabilitySyncer: availabilitySyncer,
		Storage:            storage,
		InternalConfig:     internalConfig,
		Log:                logger,
		now:                time.Now,
	}
}

func (uc *providerUsecase) SearchProviders(ctx context.Context, request *requests.SearchProviders) ([]responses.ProviderProfile, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.SearchProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profiles, total, err := uc.ProfileRepository.Search(ctx, queries.SearchProviders(request), request.Page, request.PageSize)
	if err != nil {
		uc.Log.Error("providerUsecase.SearchProviders error searching profiles",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	result := make([]responses.ProviderProfile, 0, len(profiles))
	for _, profile := range profiles {
		result = append(result, profile.ConvertIntoResponse(uc.photoURL(ctx, profile.PhotoObject)))
	}

	uc.Log.Info("providerUsecase.SearchProviders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, total, nil
}

// FindProviderByID accepts either the provider's user id or the profile id.
func (uc *providerUsecase) FindProviderByID(ctx context.Context, providerID string) (*responses.ProviderProfile, error) {
	profile, err := uc.ProfileRepository.FindFirstByUserID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile, err = uc.ProfileRepository.FindByID(ctx, providerID)
		if err != nil {
			return nil, err
		}
	}
	if profile == nil {
		return nil, exceptions.ErrResourceNotFound("provider profile")
	}

	response := profile.ConvertIntoResponse(uc.photoURL(ctx, profile.PhotoObject))
	return &response, nil
}

// UpsertMyProfile creates or updates the caller's profile. The cached
// availability and the photo are owned by other operations and never
// written here; a new profile is seeded from existing availability records.
func (uc *providerUsecase) UpsertMyProfile(ctx context.Context, userID string, request *requests.UpsertProviderProfile) (*responses.ProviderProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.UpsertMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, userID),
	)

	profile, err := uc.ProfileRepository.FindFirstByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	created := profile == nil
	if created {
		profile = &models.ProviderProfile{
			ID:     uuid.NewString(),
			UserID: userID,
		}
		profile.SetCreatedAtUpdatedAt(now)
	} else {
		profile.SetUpdatedAt(now)
	}
	profile.Name = request.Name
	profile.Specialty = request.Specialty
	profile.Bio = request.Bio
	profile.HourlyRate = request.HourlyRate
	profile.Currency = request.Currency

	saved, err := uc.ProfileRepository.Upsert(ctx, profile)
	if err != nil {
		uc.Log.Error("providerUsecase.UpsertMyProfile error saving profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if created {
		saved = uc.seedAvailability(ctx, saved)
	}

	response := saved.ConvertIntoResponse(uc.photoURL(ctx, saved.PhotoObject))
	return &response, nil
}

// seedAvailability fills a freshly created profile from records written
// before it existed. Failures leave the empty cache for the sweep to heal.
func (uc *providerUsecase) seedAvailability(ctx context.Context, profile *models.ProviderProfile) *models.ProviderProfile {
	if err := uc.AvailabilitySyncer.SyncAvailabilityToProfile(ctx, profile.UserID); err != nil {
		uc.Log.Warn("providerUsecase.seedAvailability error syncing new profile",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingProviderIDKey, profile.UserID),
			zap.Error(err),
		)
		return profile
	}
	reloaded, err := uc.ProfileRepository.FindByID(ctx, profile.ID)
	if err != nil || reloaded == nil {
		return profile
	}
	return reloaded
}

func (uc *providerUsecase) UploadMyPhoto(ctx context.Context, userID string, reader io.Reader, size int64, contentType string) (*responses.UploadPhoto, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.UploadMyPhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, userID),
	)

	extension, ok := photoExtensions[contentType]
	if !ok {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("unsupported content type %q", contentType))
	}
	maxBytes := int64(uc.InternalConfig.Minio.ProfilePhotoMaxUploadSizeInMB) << 20
	if maxBytes <= 0 {
		maxBytes = constvars.MaxProfilePhotoBytes
	}
	if size > maxBytes {
		return nil, exceptions.ErrImageTooLarge(fmt.Errorf("photo is %d bytes, limit is %d", size, maxBytes))
	}

	profile, err := uc.ProfileRepository.FindFirstByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrResourceNotFound("provider profile")
	}

	objectName := utils.GenerateProfilePhotoObjectName(userID, extension)
	if _, err := uc.Storage.UploadObject(ctx, reader, size, objectName, contentType); err != nil {
		uc.Log.Error("providerUsecase.UploadMyPhoto error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeStorageOperation),
			zap.Error(err),
		)
		return nil, err
	}
	if err := uc.ProfileRepository.UpdatePhotoObject(ctx, profile.ID, objectName); err != nil {
		return nil, err
	}

	url, err := uc.Storage.GetObjectURL(ctx, objectName, uc.photoURLExpiry())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("providerUsecase.UploadMyPhoto succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.UploadPhoto{ObjectName: objectName, URL: url}, nil
}

// photoURL presigns objectName. A presign failure only drops the URL from
// the response.
func (uc *providerUsecase) photoURL(ctx context.Context, objectName string) string {
	if objectName == "" {
		return ""
	}
	url, err := uc.Storage.GetObjectURL(ctx, objectName, uc.photoURLExpiry())
	if err != nil {
		uc.Log.Warn("providerUsecase.photoURL presign failed",
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func (uc *providerUsecase) photoURLExpiry() time.Duration {
	minutes := uc.InternalConfig.Minio.PreSignedURLObjectExpiryInMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
