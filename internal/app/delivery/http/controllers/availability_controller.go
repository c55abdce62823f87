package controllers

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/dto/responses"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

var (
	availabilityControllerInstance *AvailabilityController
	onceAvailabilityController     sync.Once
)

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	onceAvailabilityController.Do(func() {
		availabilityControllerInstance = &AvailabilityController{
			Log:                 logger,
			AvailabilityUsecase: availabilityUsecase,
		}
	})
	return availabilityControllerInstance
}

func (ctrl *AvailabilityController) GetGroupedAvailability(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	providerID := chi.URLParam(r, constvars.URLParamProviderID)
	ctrl.Log.Info("AvailabilityController.GetGroupedAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	grouped, err := ctrl.AvailabilityUsecase.GetProviderAvailabilityGrouped(ctx, providerID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AvailabilityController.GetGroupedAvailability", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessGetAvailability, responses.GroupedAvailability{
		ProviderID: providerID,
		Dates:      grouped,
	})
}

func (ctrl *AvailabilityController) SetMyAvailability(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AvailabilityController.SetMyAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	providerID, ok := identitySub(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.SetAvailability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	records := make([]models.AvailabilityRecord, 0, len(request.Slots))
	for _, slot := range request.Slots {
		records = append(records, models.AvailabilityRecord{
			ProviderID:  providerID,
			Date:        slot.Date,
			Time:        slot.Time,
			IsAvailable: slot.IsAvailable,
		})
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	availability, err := ctrl.AvailabilityUsecase.SetAvailability(ctx, providerID, records)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AvailabilityController.SetMyAvailability", requestID, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.SetMyAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessSetAvailability, responses.SetAvailability{
		ProviderID:   providerID,
		Saved:        len(records),
		Availability: availability,
	})
}

func (ctrl *AvailabilityController) DeleteMyAvailability(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AvailabilityController.DeleteMyAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	providerID, ok := identitySub(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.DeleteAvailability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	availability, err := ctrl.AvailabilityUsecase.DeleteAvailability(ctx, providerID, request.Date, request.Times)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AvailabilityController.DeleteMyAvailability", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessDeleteAvailability, responses.DeleteAvailability{
		ProviderID:   providerID,
		Availability: availability,
	})
}

// SyncAvailability rebuilds the profile cache. Only the provider may
// trigger it for their own profile.
func (ctrl *AvailabilityController) SyncAvailability(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	providerID := chi.URLParam(r, constvars.URLParamProviderID)
	ctrl.Log.Info("AvailabilityController.SyncAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	sub, ok := identitySub(ctrl.Log, w, r)
	if !ok {
		return
	}
	if sub != providerID {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrForbiddenResource(sub, "availability of "+providerID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.AvailabilityUsecase.SyncAvailabilityToProfile(ctx, providerID); err != nil {
		writeUsecaseError(ctrl.Log, w, "AvailabilityController.SyncAvailability", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessSyncAvailability, nil)
}
