package requests

type AvailabilitySlot struct {
	Date        string `json:"date" validate:"required,date_ymd"`
	Time        string `json:"time" validate:"required,clock_24h"`
	IsAvailable bool   `json:"is_available"`
}

type SetAvailability struct {
	Slots []AvailabilitySlot `json:"slots" validate:"required,min=1,max=500,dive"`
}

type DeleteAvailability struct {
	Date  string   `json:"date" validate:"required,date_ymd"`
	Times []string `json:"times" validate:"omitempty,dive,clock_24h"`
}
