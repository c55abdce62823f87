package contracts

import (
	"caremarket-service/internal/app/models"
	"context"
)

type AvailabilityRepository interface {
	FindByProviderID(ctx context.Context, providerID string) ([]models.AvailabilityRecord, error)
	FindByProviderIDAndDateRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.AvailabilityRecord, error)
	UpsertMany(ctx context.Context, records []models.AvailabilityRecord) (int, error)
	DeleteOnDate(ctx context.Context, providerID, date string, times []string) (int64, error)
	DistinctProviderIDs(ctx context.Context) ([]string, error)
}

// AvailabilitySyncer rebuilds the availability cached on a provider profile.
type AvailabilitySyncer interface {
	SyncAvailabilityToProfile(ctx context.Context, providerID string) error
}

type AvailabilityUsecase interface {
	AvailabilitySyncer
	GetProviderAvailabilityGrouped(ctx context.Context, providerID string) (map[string][]string, error)
	SetAvailability(ctx context.Context, providerID string, records []models.AvailabilityRecord) ([]string, error)
	DeleteAvailability(ctx context.Context, providerID, date string, times []string) ([]string, error)
	SyncAllProviders(ctx context.Context) (int, error)
}
