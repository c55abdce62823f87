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
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		bookingControllerInstance = &BookingController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
	})
	return bookingControllerInstance
}

// GetWeekTimeSlots returns seven days of slots starting at week_start,
// today when omitted.
func (ctrl *BookingController) GetWeekTimeSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BookingController.GetWeekTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.WeekTimeSlots{
		ProviderID: chi.URLParam(r, constvars.URLParamProviderID),
		WeekStart:  strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamWeekStart)),
	}
	if request.WeekStart == "" {
		request.WeekStart = time.Now().Format(constvars.DateLayoutYMD)
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamWeekStart))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	days, err := ctrl.BookingUsecase.BuildWeekTimeSlots(ctx, request.ProviderID, request.WeekStart)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "BookingController.GetWeekTimeSlots", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessGetWeekTimeSlots, responses.WeekTimeSlots{
		ProviderID: request.ProviderID,
		WeekStart:  request.WeekStart,
		Days:       convertDays(days),
	})
}

func (ctrl *BookingController) FindAvailableDurations(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	providerID := chi.URLParam(r, constvars.URLParamProviderID)
	ctrl.Log.Info("BookingController.FindAvailableDurations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	query := r.URL.Query()
	durations, err := utils.ParseFloatList(query.Get(constvars.QueryParamDurations))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamDurations))
		return
	}

	request := &requests.FindAvailableDurations{
		Date:      strings.TrimSpace(query.Get(constvars.QueryParamDate)),
		StartTime: strings.ToUpper(strings.TrimSpace(query.Get(constvars.QueryParamStartTime))),
		Durations: durations,
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	available, err := ctrl.BookingUsecase.FindAvailableDurations(ctx, providerID, request.Date, request.StartTime, request.Durations)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "BookingController.FindAvailableDurations", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessGetAvailableDuration, responses.AvailableDurations{
		ProviderID: providerID,
		Date:       request.Date,
		StartTime:  request.StartTime,
		Durations:  available,
	})
}

func (ctrl *BookingController) Checkout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BookingController.Checkout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	clientID, ok := identitySub(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.Checkout)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("BookingController.Checkout error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCheckoutRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := ctrl.BookingUsecase.Checkout(ctx, clientID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "BookingController.Checkout", requestID, err)
		return
	}

	ctrl.Log.Info("BookingController.Checkout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, session.BookingID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSuccessCheckout, session)
}

func convertDays(days []models.DayTimeSlots) []responses.DayTimeSlots {
	result := make([]responses.DayTimeSlots, 0, len(days))
	for _, day := range days {
		slots := make([]responses.TimeSlot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, slot.ConvertIntoResponse())
		}
		result = append(result, responses.DayTimeSlots{Date: day.Date, Slots: slots})
	}
	return result
}
