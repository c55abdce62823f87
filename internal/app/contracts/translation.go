package contracts

import (
	"caremarket-service/internal/app/models"
	"context"
)

type TranslationRepository interface {
	FindByLocale(ctx context.Context, locale string, keys []string) ([]models.Translation, error)
}

// TranslationCache is a process-scoped cache keyed by locale and key.
type TranslationCache interface {
	Get(locale, key string) (string, bool)
	Set(locale, key, value string)
}

type TranslationUsecase interface {
	GetTranslations(ctx context.Context, locale string, keys []string) (map[string]string, error)
}
