package bookings

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// DefaultDaySlots returns the hourly start times of a default working day,
// 09:00 through 16:00, each one hour long.
func DefaultDaySlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, constvars.DefaultWeekEndHour-constvars.DefaultWeekStartHour)
	for hour := constvars.DefaultWeekStartHour; hour < constvars.DefaultWeekEndHour; hour++ {
		slots = append(slots, models.TimeSlot{
			Time:     fmt.Sprintf("%02d:00", hour),
			Duration: constvars.DefaultSlotDuration,
		})
	}
	return slots
}

// BuildWeek marks each default slot of dates as available when an
// available record exists for that hour, and as booked when it overlaps
// a booking on the same date.
func BuildWeek(dates []string, records []models.AvailabilityRecord, bookings []models.Booking) ([]models.DayTimeSlots, error) {
	available := make(map[string]bool, len(records))
	for _, record := range records {
		if !record.IsAvailable || len(record.Time) < 2 {
			continue
		}
		available[record.Date+"|"+record.Time[:2]] = true
	}

	bookingsByDate := make(map[string][]models.Booking)
	for _, booking := range bookings {
		bookingsByDate[booking.Date] = append(bookingsByDate[booking.Date], booking)
	}

	week := make([]models.DayTimeSlots, 0, len(dates))
	for _, date := range dates {
		slots := DefaultDaySlots()
		for i := range slots {
			slots[i].IsAvailable = available[date+"|"+slots[i].Time[:2]]

			clock, err := To12HourClock(slots[i].Time)
			if err != nil {
				return nil, err
			}
			for _, booking := range bookingsByDate[date] {
				if booking.BookingStatus == constvars.BookingStatusCancelled {
					continue
				}
				start, end, err := BookingInterval(booking)
				if err != nil {
					return nil, err
				}
				overlap, err := IsOverlap(clock, slots[i].Duration, start, end, date)
				if err != nil {
					return nil, err
				}
				if overlap {
					slots[i].IsBooked = true
					break
				}
			}
		}
		week = append(week, models.DayTimeSlots{Date: date, Slots: slots})
	}
	return week, nil
}

// To12HourClock converts "HH:MM" into "h:mm AM/PM".
func To12HourClock(clock24 string) (string, error) {
	parsed, err := time.Parse(constvars.TimeLayout24Hour, clock24)
	if err != nil {
		return "", err
	}
	return parsed.Format(constvars.TimeLayout12Hour), nil
}

// AmountForDuration prices a booking in minor units, rounded to the
// nearest unit.
func AmountForDuration(hourlyRate int64, durationHours float64) int64 {
	return int64(math.Round(float64(hourlyRate) * durationHours))
}

func newBookingID() string {
	return uuid.NewString()
}
