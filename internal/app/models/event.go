package models

import "time"

type MessageCreatedEvent struct {
	MessageID   string `json:"message_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Timestamp   string `json:"timestamp"`
}

type BookingStatusEvent struct {
	BookingID         string    `json:"booking_id"`
	ProviderID        string    `json:"provider_id"`
	ClientID          string    `json:"client_id"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Status            string    `json:"status"`
	CheckoutSessionID string    `json:"checkout_session_id"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type AvailabilitySyncedEvent struct {
	ProviderID string    `json:"provider_id"`
	Entries    int       `json:"entries"`
	SyncedAt   time.Time `json:"synced_at"`
}
