package queries

import "caremarket-service/internal/pkg/constvars"

func ActiveBookingsOnDate(providerID, date string) Filter {
	return And(
		Eq("providerId", providerID),
		Eq("date", date),
		Ne("bookingStatus", constvars.BookingStatusCancelled),
	)
}

func ActiveBookingsInRange(providerID, fromDate, toDate string) Filter {
	return And(
		Eq("providerId", providerID),
		Between("date", fromDate, toDate),
		Ne("bookingStatus", constvars.BookingStatusCancelled),
	)
}

func BookingByCheckoutSession(sessionID string) Filter {
	return Eq("checkoutSessionId", sessionID)
}
