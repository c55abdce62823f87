package requests

type UpsertProviderProfile struct {
	Name       string `json:"name" validate:"required,max=120"`
	Specialty  string `json:"specialty" validate:"required,max=80"`
	Bio        string `json:"bio" validate:"max=2000"`
	HourlyRate int64  `json:"hourly_rate" validate:"gte=0"`
	Currency   string `json:"currency" validate:"required,len=3"`
}

type SearchProviders struct {
	Name      string `validate:"max=120"`
	Specialty string `validate:"max=80"`
	Date      string `validate:"omitempty,date_ymd"`
	MinRate   *int64 `validate:"omitempty,gte=0"`
	MaxRate   *int64 `validate:"omitempty,gte=0"`
	Pagination
}
