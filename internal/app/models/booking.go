package models

import "caremarket-service/internal/pkg/dto/responses"

type Booking struct {
	ID                string  `bson:"_id" json:"id"`
	ProviderID        string  `bson:"providerId" json:"providerId"`
	ClientID          string  `bson:"clientId" json:"clientId"`
	Date              string  `bson:"date" json:"date"`
	Time              string  `bson:"time" json:"time"`
	Duration          float64 `bson:"duration" json:"duration"`
	BookingStatus     string  `bson:"bookingStatus" json:"bookingStatus"`
	CheckoutSessionID string  `bson:"checkoutSessionId,omitempty" json:"checkoutSessionId,omitempty"`
	AmountTotal       int64   `bson:"amountTotal" json:"amountTotal"`
	Currency          string  `bson:"currency" json:"currency"`
	TimeModel         `bson:",inline"`
}

type TimeSlot struct {
	Time        string  `json:"time"`
	IsAvailable bool    `json:"isAvailable"`
	IsBooked    bool    `json:"isBooked"`
	Duration    float64 `json:"duration"`
}

func (t TimeSlot) ConvertIntoResponse() responses.TimeSlot {
	return responses.TimeSlot{
		Time:        t.Time,
		IsAvailable: t.IsAvailable,
		IsBooked:    t.IsBooked,
		Duration:    t.Duration,
	}
}

type DayTimeSlots struct {
	Date  string
	Slots []TimeSlot
}
