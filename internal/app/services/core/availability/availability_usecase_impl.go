package availability

import (
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	ProfileRepository      contracts.ProfileRepository
	Transactor             contracts.Transactor
	EventPublisher         contracts.EventPublisher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
	now                    func() time.Time
}

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	profileRepository contracts.ProfileRepository,
	transactor contracts.Transactor,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		AvailabilityRepository: availabilityRepository,
		ProfileRepository:      profileRepository,
		Transactor:             transactor,
		EventPublisher:         eventPublisher,
		InternalConfig:         internalConfig,
		Log:                    logger,
		now:                    time.Now,
	}
}

// SyncAvailabilityToProfile rebuilds the profile availability cache from
// the provider's records. A provider without records or without a profile
// is skipped with a warning unless strict sync is enabled.
func (uc *availabilityUsecase) SyncAvailabilityToProfile(ctx context.Context, providerID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.SyncAvailabilityToProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	records, err := uc.AvailabilityRepository.FindByProviderID(ctx, providerID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		uc.Log.Warn("availabilityUsecase.SyncAvailabilityToProfile no availability records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
		)
		if uc.InternalConfig.Availability.StrictSync {
			return exceptions.ErrResourceNotFound("availability records")
		}
		return nil
	}

	profile, err := uc.ProfileRepository.FindFirstByUserID(ctx, providerID)
	if err != nil {
		return err
	}
	if profile == nil {
		uc.Log.Warn("availabilityUsecase.SyncAvailabilityToProfile no provider profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
		)
		if uc.InternalConfig.Availability.StrictSync {
			return exceptions.ErrResourceNotFound("provider profile")
		}
		return nil
	}

	availability := FormatAvailabilityForProfile(records)
	if err := uc.ProfileRepository.UpdateAvailability(ctx, profile.ID, availability); err != nil {
		return err
	}

	uc.Log.Info("availabilityUsecase.SyncAvailabilityToProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Int(constvars.LoggingCountKey, len(availability)),
	)
	return nil
}

// GetProviderAvailabilityGrouped reads the cached profile entries, not the
// normalized records.
func (uc *availabilityUsecase) GetProviderAvailabilityGrouped(ctx context.Context, providerID string) (map[string][]string, error) {
	profile, err := uc.ProfileRepository.FindFirstByUserID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrResourceNotFound("provider profile")
	}
	return GroupAvailabilityByDate(profile.Availability), nil
}

// SetAvailability upserts records and rewrites the profile cache in one
// transaction, so a failed resync rolls the records back as well.
func (uc *availabilityUsecase) SetAvailability(ctx context.Context, providerID string, records []models.AvailabilityRecord) ([]string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.SetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)

	for i := range records {
		records[i].ProviderID = providerID
	}

	var availability []string
	err := uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.AvailabilityRepository.UpsertMany(txCtx, records); err != nil {
			return err
		}
		var err error
		availability, err = uc.resyncProfile(txCtx, providerID)
		return err
	})
	if err != nil {
		uc.Log.Error("availabilityUsecase.SetAvailability error in transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishSynced(ctx, providerID, len(availability))
	return availability, nil
}

// DeleteAvailability removes records on date, optionally only the given
// times, and resyncs the cache in the same transaction.
func (uc *availabilityUsecase) DeleteAvailability(ctx context.Context, providerID, date string, times []string) ([]string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.DeleteAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingDateKey, date),
	)

	var availability []string
	err := uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.AvailabilityRepository.DeleteOnDate(txCtx, providerID, date, times); err != nil {
			return err
		}
		var err error
		availability, err = uc.resyncProfile(txCtx, providerID)
		return err
	})
	if err != nil {
		uc.Log.Error("availabilityUsecase.DeleteAvailability error in transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishSynced(ctx, providerID, len(availability))
	return availability, nil
}

// SyncAllProviders resyncs every provider that has records and returns how
// many caches were rewritten. Individual failures are logged and skipped.
func (uc *availabilityUsecase) SyncAllProviders(ctx context.Context) (int, error) {
	providerIDs, err := uc.AvailabilityRepository.DistinctProviderIDs(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, providerID := range providerIDs {
		if ctx.Err() != nil {
			return synced, ctx.Err()
		}
		if err := uc.SyncAvailabilityToProfile(ctx, providerID); err != nil {
			uc.Log.Warn("availabilityUsecase.SyncAllProviders provider sync failed",
				zap.String(constvars.LoggingProviderIDKey, providerID),
				zap.Error(err),
			)
			continue
		}
		synced++
	}
	return synced, nil
}

// resyncProfile is the write path variant of SyncAvailabilityToProfile: an
// empty record set clears the cache and a missing profile is an error.
func (uc *availabilityUsecase) resyncProfile(ctx context.Context, providerID string) ([]string, error) {
	profile, err := uc.ProfileRepository.FindFirstByUserID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrResourceNotFound("provider profile")
	}

	records, err := uc.AvailabilityRepository.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	availability := FormatAvailabilityForProfile(records)
	if err := uc.ProfileRepository.UpdateAvailability(ctx, profile.ID, availability); err != nil {
		return nil, err
	}
	return availability, nil
}

func (uc *availabilityUsecase) publishSynced(ctx context.Context, providerID string, entries int) {
	err := uc.EventPublisher.PublishJSON(ctx, constvars.EventRoutingKeyAvailabilitySync, models.AvailabilitySyncedEvent{
		ProviderID: providerID,
		Entries:    entries,
		SyncedAt:   uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("availabilityUsecase.publishSynced failed",
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.Error(err),
		)
	}
}
