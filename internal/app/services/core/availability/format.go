package availability

import (
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"sort"
	"strings"
)

// FormatAvailabilityForProfile projects available records into the
// "yyyy-MM-dd:HH" entries cached on the provider profile. Minutes are
// dropped, so the cache has hour resolution only.
func FormatAvailabilityForProfile(records []models.AvailabilityRecord) []string {
	entries := make([]string, 0, len(records))
	for _, record := range records {
		if !record.IsAvailable {
			continue
		}
		hour, _, _ := strings.Cut(record.Time, constvars.AvailabilitySep)
		entries = append(entries, record.Date+constvars.AvailabilitySep+hour)
	}
	return entries
}

// ParseAvailabilityFromProfile reverses FormatAvailabilityForProfile. The
// time of each entry becomes "HH:00". Entries without a separator are
// skipped.
func ParseAvailabilityFromProfile(entries []string) []models.DateTime {
	parsed := make([]models.DateTime, 0, len(entries))
	for _, entry := range entries {
		date, hour, found := strings.Cut(entry, constvars.AvailabilitySep)
		if !found {
			continue
		}
		parsed = append(parsed, models.DateTime{
			Date: date,
			Time: hour + ":00",
		})
	}
	return parsed
}

// GroupAvailabilityByDate groups cached entries by date with each day's
// times sorted.
func GroupAvailabilityByDate(entries []string) map[string][]string {
	grouped := make(map[string][]string)
	for _, dateTime := range ParseAvailabilityFromProfile(entries) {
		grouped[dateTime.Date] = append(grouped[dateTime.Date], dateTime.Time)
	}
	for date := range grouped {
		sort.Strings(grouped[date])
	}
	return grouped
}
