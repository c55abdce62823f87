package requests

type FindAvailableDurations struct {
	Date      string    `validate:"required,date_ymd"`
	StartTime string    `validate:"required,clock_12h"`
	Durations []float64 `validate:"required,min=1,dive,gt=0,lte=24"`
}

type Checkout struct {
	ProviderID string  `json:"provider_id" validate:"required"`
	Date       string  `json:"date" validate:"required,date_ymd"`
	Time       string  `json:"time" validate:"required,clock_12h"`
	Duration   float64 `json:"duration" validate:"required,gt=0,lte=8"`
	SuccessURL string  `json:"success_url" validate:"omitempty,url"`
	CancelURL  string  `json:"cancel_url" validate:"omitempty,url"`
}

type WeekTimeSlots struct {
	ProviderID string `validate:"required"`
	WeekStart  string `validate:"required,date_ymd"`
}
