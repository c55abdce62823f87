package responses

import "time"

type ProviderProfile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Bio          string    `json:"bio,omitempty"`
	HourlyRate   int64     `json:"hourly_rate"`
	Currency     string    `json:"currency"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Availability []string  `json:"availability"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UploadPhoto struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}
