package bookings

import (
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const checkoutLockTTL = 30 * time.Second

type bookingUsecase struct {
	BookingRepository      contracts.BookingRepository
	AvailabilityRepository contracts.AvailabilityRepository
	ProfileRepository      contracts.ProfileRepository
	PaymentGateway         contracts.PaymentGateway
	EventPublisher         contracts.EventPublisher
	Locker                 contracts.LockerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
	now                    func() time.Time
	newID                  func() string
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	availabilityRepository contracts.AvailabilityRepository,
	profileRepository contracts.ProfileRepository,
	paymentGateway contracts.PaymentGateway,
	eventPublisher contracts.EventPublisher,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository:      bookingRepository,
		AvailabilityRepository: availabilityRepository,
		ProfileRepository:      profileRepository,
		PaymentGateway:         paymentGateway,
		EventPublisher:         eventPublisher,
		Locker:                 locker,
		InternalConfig:         internalConfig,
		Log:                    logger,
		now:                    time.Now,
		newID:                  newBookingID,
	}
}

func (uc *bookingUsecase) FindAvailableDurations(ctx context.Context, providerID, date, startTime string, candidates []float64) ([]float64, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.FindAvailableDurations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingDateKey, date),
	)

	existing, err := uc.BookingRepository.FindActiveByProviderAndDate(ctx, providerID, date)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindAvailableDurations error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	durations, err := FilterNonOverlappingDurations(date, startTime, candidates, existing)
	if err != nil {
		return nil, exceptions.ErrTimeFormat(err)
	}
	if durations == nil {
		durations = []float64{}
	}

	uc.Log.Info("bookingUsecase.FindAvailableDurations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(durations)),
	)
	return durations, nil
}

// BuildWeekTimeSlots lays out seven days of default hourly slots starting
// at weekStart. Availability comes from the normalized records and a slot
// is booked when it overlaps any active booking on the same day.
func (uc *bookingUsecase) BuildWeekTimeSlots(ctx context.Context, providerID, weekStart string) ([]models.DayTimeSlots, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.BuildWeekTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingDateKey, weekStart),
	)

	start, err := time.ParseInLocation(constvars.DateLayoutYMD, weekStart, time.Local)
	if err != nil {
		return nil, exceptions.ErrTimeFormat(err)
	}
	dates := make([]string, constvars.DaysInWeek)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(constvars.DateLayoutYMD)
	}
	fromDate, toDate := dates[0], dates[len(dates)-1]

	records, err := uc.AvailabilityRepository.FindByProviderIDAndDateRange(ctx, providerID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	bookings, err := uc.BookingRepository.FindActiveByProviderInRange(ctx, providerID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	week, err := BuildWeek(dates, records, bookings)
	if err != nil {
		return nil, exceptions.ErrTimeFormat(err)
	}

	uc.Log.Info("bookingUsecase.BuildWeekTimeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	return week, nil
}

func (uc *bookingUsecase) newBooking(clientID, providerID, date, clock string, duration float64, profile *models.ProviderProfile) *models.Booking {
	currency := profile.Currency
	if currency == "" {
		currency = constvars.DefaultCurrency
	}
	booking := &models.Booking{
		ID:            uc.newID(),
		ProviderID:    providerID,
		ClientID:      clientID,
		Date:          date,
		Time:          clock,
		Duration:      duration,
		BookingStatus: constvars.BookingStatusPendingPayment,
		AmountTotal:   AmountForDuration(profile.HourlyRate, duration),
		Currency:      currency,
	}
	booking.SetCreatedAtUpdatedAt(uc.now())
	return booking
}

func checkoutLockKey(providerID, date string) string {
	return fmt.Sprintf("%scheckout:%s:%s", constvars.LeaderLockKeyBase, providerID, date)
}
