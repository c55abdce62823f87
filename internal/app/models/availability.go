package models

// AvailabilityRecord is the normalized source of truth for a provider's
// open hours. It is unique on (providerId, date, time).
type AvailabilityRecord struct {
	ID          string `bson:"_id" json:"id"`
	ProviderID  string `bson:"providerId" json:"providerId"`
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time" json:"time"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}
