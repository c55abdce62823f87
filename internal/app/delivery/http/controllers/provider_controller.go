package controllers

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
	MaxPhotoBytes   int64
}

var (
	providerControllerInstance *ProviderController
	onceProviderController     sync.Once
)

func NewProviderController(logger *zap.Logger, providerUsecase contracts.ProviderUsecase, maxPhotoBytes int64) *ProviderController {
	onceProviderController.Do(func() {
		if maxPhotoBytes <= 0 {
			maxPhotoBytes = constvars.MaxProfilePhotoBytes
		}
		providerControllerInstance = &ProviderController{
			Log:             logger,
			ProviderUsecase: providerUsecase,
			MaxPhotoBytes:   maxPhotoBytes,
		}
	})
	return providerControllerInstance
}

func (ctrl *ProviderController) SearchProviders(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProviderController.SearchProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := r.URL.Query()
	minRate, err := utils.ParseOptionalInt64(query.Get(constvars.QueryParamMinRate))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamMinRate))
		return
	}
	maxRate, err := utils.ParseOptionalInt64(query.Get(constvars.QueryParamMaxRate))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamMaxRate))
		return
	}

	request := &requests.SearchProviders{
		Name:       query.Get(constvars.QueryParamName),
		Specialty:  query.Get(constvars.QueryParamSpecialty),
		Date:       query.Get(constvars.QueryParamDate),
		MinRate:    minRate,
		MaxRate:    maxRate,
		Pagination: utils.BuildPaginationRequest(r),
	}
	utils.SanitizeSearchProvidersRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ProviderController.SearchProviders validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, total, err := ctrl.ProviderUsecase.SearchProviders(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ProviderController.SearchProviders", requestID, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	ctrl.Log.Info("ProviderController.SearchProviders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ResponseSuccessGetProviders, pagination, result)
}

func (ctrl *ProviderController) FindProviderByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	providerID := chi.URLParam(r, constvars.URLParamProviderID)
	ctrl.Log.Info("ProviderController.FindProviderByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ProviderUsecase.FindProviderByID(ctx, providerID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ProviderController.FindProviderByID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessGetProvider, result)
}

func (ctrl *ProviderController) UpsertMyProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProviderController.UpsertMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, ok := identitySub(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpsertProviderProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ProviderController.UpsertMyProfile error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpsertProviderProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ProviderUsecase.UpsertMyProfile(ctx, userID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ProviderController.UpsertMyProfile", requestID, err)
		return
	}

	ctrl.Log.Info("ProviderController.UpsertMyProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, userID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessUpsertProfile, result)
}

func (ctrl *ProviderController) UploadMyPhoto(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProviderController.UploadMyPhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, ok := identitySub(ctrl.Log, w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, ctrl.MaxPhotoBytes+(1<<20))
	if err := r.ParseMultipartForm(ctrl.MaxPhotoBytes); err != nil {
		ctrl.Log.Error("ProviderController.UploadMyPhoto error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFieldPhoto)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	contentType := http.DetectContentType(sniff[:n])
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ProviderUsecase.UploadMyPhoto(ctx, userID, file, header.Size, contentType)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ProviderController.UploadMyPhoto", requestID, err)
		return
	}

	ctrl.Log.Info("ProviderController.UploadMyPhoto succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, result.ObjectName),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessUploadPhoto, result)
}
