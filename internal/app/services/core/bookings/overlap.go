package bookings

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clock12HourRegex = regexp.MustCompile(constvars.RegexClock12Hour)

// ToDateTime combines a yyyy-MM-dd date and an "h:mm AM/PM" clock into a
// time in the process-local zone. 12 AM is midnight and 12 PM is noon.
func ToDateTime(dateStr, timeStr string) (time.Time, error) {
	day, err := time.ParseInLocation(constvars.DateLayoutYMD, strings.TrimSpace(dateStr), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", exceptions.ErrInvalidTimeFormat, dateStr)
	}

	matches := clock12HourRegex.FindStringSubmatch(strings.TrimSpace(timeStr))
	if matches == nil {
		return time.Time{}, fmt.Errorf("%w: time %q", exceptions.ErrInvalidTimeFormat, timeStr)
	}
	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])

	switch strings.ToUpper(matches[3]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), nil
}

// HoursToDuration converts fractional hours with minute precision.
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(math.Round(hours*60)) * time.Minute
}

// IsOverlap reports whether [slotStart, slotStart+duration) intersects
// [existingStart, existingEnd). Touching endpoints do not overlap.
func IsOverlap(slotTime string, slotDurationHours float64, existingStart, existingEnd time.Time, slotDate string) (bool, error) {
	slotStart, err := ToDateTime(slotDate, slotTime)
	if err != nil {
		return false, err
	}
	slotEnd := slotStart.Add(HoursToDuration(slotDurationHours))
	return slotStart.Before(existingEnd) && slotEnd.After(existingStart), nil
}

// BookingInterval returns the half-open interval occupied by booking.
func BookingInterval(booking models.Booking) (time.Time, time.Time, error) {
	start, err := ToDateTime(booking.Date, booking.Time)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(HoursToDuration(booking.Duration)), nil
}

// FilterNonOverlappingDurations keeps the candidate durations that, starting
// at startTime on date, overlap none of the existing bookings on that same
// date. Bookings on other dates are never compared, so a booking that runs
// past midnight does not block the next morning.
func FilterNonOverlappingDurations(date, startTime string, candidates []float64, existing []models.Booking) ([]float64, error) {
	if len(existing) == 0 {
		return candidates, nil
	}

	type interval struct{ start, end time.Time }
	sameDay := make([]interval, 0, len(existing))
	for _, booking := range existing {
		if booking.Date != date || booking.BookingStatus == constvars.BookingStatusCancelled {
			continue
		}
		start, end, err := BookingInterval(booking)
		if err != nil {
			return nil, err
		}
		sameDay = append(sameDay, interval{start: start, end: end})
	}

	available := make([]float64, 0, len(candidates))
	for _, candidate := range candidates {
		conflict := false
		for _, booked := range sameDay {
			overlap, err := IsOverlap(startTime, candidate, booked.start, booked.end, date)
			if err != nil {
				return nil, err
			}
			if overlap {
				conflict = true
				break
			}
		}
		if !conflict {
			available = append(available, candidate)
		}
	}
	return available, nil
}
