package controllers

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/responses"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxLocaleLength = 16

type TranslationController struct {
	Log                *zap.Logger
	TranslationUsecase contracts.TranslationUsecase
}

var (
	translationControllerInstance *TranslationController
	onceTranslationController     sync.Once
)

func NewTranslationController(logger *zap.Logger, translationUsecase contracts.TranslationUsecase) *TranslationController {
	onceTranslationController.Do(func() {
		translationControllerInstance = &TranslationController{
			Log:                logger,
			TranslationUsecase: translationUsecase,
		}
	})
	return translationControllerInstance
}

func (ctrl *TranslationController) GetTranslations(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	locale := chi.URLParam(r, constvars.URLParamLocale)
	ctrl.Log.Info("TranslationController.GetTranslations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocaleKey, locale),
	)

	if locale == "" || len(locale) > maxLocaleLength {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(fmt.Errorf("invalid locale %q", locale), constvars.URLParamLocale))
		return
	}
	keys := utils.ParseCSV(r.URL.Query().Get(constvars.QueryParamKeys))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	values, err := ctrl.TranslationUsecase.GetTranslations(ctx, locale, keys)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "TranslationController.GetTranslations", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessGetTranslations, responses.Translations{
		Locale: locale,
		Values: values,
	})
}
