package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *TimeModel) SetUpdatedAt(now time.Time) {
	m.UpdatedAt = now
}

// DateTime is a date and wall clock pair without zone information.
type DateTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
