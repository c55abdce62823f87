package responses

type DayTimeSlots struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

type TimeSlot struct {
	Time        string  `json:"time"`
	IsAvailable bool    `json:"is_available"`
	IsBooked    bool    `json:"is_booked"`
	Duration    float64 `json:"duration"`
}

type WeekTimeSlots struct {
	ProviderID string         `json:"provider_id"`
	WeekStart  string         `json:"week_start"`
	Days       []DayTimeSlots `json:"days"`
}

type AvailableDurations struct {
	ProviderID string    `json:"provider_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	Durations  []float64 `json:"durations"`
}

type CheckoutSession struct {
	BookingID   string `json:"booking_id"`
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}
