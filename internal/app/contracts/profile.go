package contracts

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/dto/responses"
	"caremarket-service/internal/pkg/queries"
	"context"
	"io"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, profileID string) (*models.ProviderProfile, error)
	FindFirstByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error)
	Search(ctx context.Context, filter queries.Filter, page, pageSize int) ([]models.ProviderProfile, int, error)
	Upsert(ctx context.Context, profile *models.ProviderProfile) (*models.ProviderProfile, error)
	UpdateAvailability(ctx context.Context, profileID string, availability []string) error
	UpdatePhotoObject(ctx context.Context, profileID, photoObject string) error
}

type ProviderUsecase interface {
	SearchProviders(ctx context.Context, request *requests.SearchProviders) ([]responses.ProviderProfile, int, error)
	FindProviderByID(ctx context.Context, providerID string) (*responses.ProviderProfile, error)
	UpsertMyProfile(ctx context.Context, userID string, request *requests.UpsertProviderProfile) (*responses.ProviderProfile, error)
	UploadMyPhoto(ctx context.Context, userID string, reader io.Reader, size int64, contentType string) (*responses.UploadPhoto, error)
}
