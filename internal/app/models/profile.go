package models

import "caremarket-service/internal/pkg/dto/responses"

type ProviderProfile struct {
	ID           string   `bson:"_id" json:"id"`
	UserID       string   `bson:"userId" json:"userId"`
	Name         string   `bson:"name" json:"name"`
	Specialty    string   `bson:"specialty" json:"specialty"`
	Bio          string   `bson:"bio" json:"bio"`
	HourlyRate   int64    `bson:"hourlyRate" json:"hourlyRate"`
	Currency     string   `bson:"currency" json:"currency"`
	PhotoObject  string   `bson:"photoObject,omitempty" json:"photoObject,omitempty"`
	Availability []string `bson:"availability" json:"availability"`
	TimeModel    `bson:",inline"`
}

func (p ProviderProfile) ConvertIntoResponse(photoURL string) responses.ProviderProfile {
	availability := p.Availability
	if availability == nil {
		availability = []string{}
	}
	return responses.ProviderProfile{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Specialty:    p.Specialty,
		Bio:          p.Bio,
		HourlyRate:   p.HourlyRate,
		Currency:     p.Currency,
		PhotoURL:     photoURL,
		Availability: availability,
		UpdatedAt:    p.UpdatedAt,
	}
}
