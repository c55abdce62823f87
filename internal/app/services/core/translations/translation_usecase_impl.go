package translations

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type translationUsecase struct {
	TranslationRepository contracts.TranslationRepository
	Cache                 contracts.TranslationCache
	Log                   *zap.Logger
}

func NewTranslationUsecase(
	translationRepository contracts.TranslationRepository,
	cache contracts.TranslationCache,
	logger *zap.Logger,
) contracts.TranslationUsecase {
	return &translationUsecase{
		TranslationRepository: translationRepository,
		Cache:                 cache,
		Log:                   logger,
	}
}

// GetTranslations resolves keys for locale. Keys without a stored value
// resolve to themselves. With no keys, every stored value of the locale
// is returned.
func (uc *translationUsecase) GetTranslations(ctx context.Context, locale string, keys []string) (map[string]string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("translationUsecase.GetTranslations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocaleKey, locale),
	)

	result := make(map[string]string, len(keys))
	var missing []string
	for _, key := range keys {
		if value, ok := uc.Cache.Get(locale, key); ok {
			result[key] = value
			continue
		}
		missing = append(missing, key)
	}
	if len(keys) > 0 && len(missing) == 0 {
		return result, nil
	}

	stored, err := uc.TranslationRepository.FindByLocale(ctx, locale, missing)
	if err != nil {
		uc.Log.Error("translationUsecase.GetTranslations error fetching translations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeMongoOperation),
			zap.Error(err),
		)
		return nil, err
	}
	for _, translation := range stored {
		result[translation.Key] = translation.Value
		uc.Cache.Set(locale, translation.Key, translation.Value)
	}
	for _, key := range missing {
		if _, ok := result[key]; !ok {
			result[key] = key
		}
	}

	uc.Log.Info("translationUsecase.GetTranslations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}
