package models

type CheckoutSessionInput struct {
	BookingID     string
	ClientID      string
	ProviderName  string
	Description   string
	AmountTotal   int64
	Currency      string
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentEvent is the provider-neutral view of a verified webhook.
type PaymentEvent struct {
	Type              string
	CheckoutSessionID string
	BookingID         string
}
