package utils

import (
	"caremarket-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeUpsertProviderProfileRequest(input *requests.UpsertProviderProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialty = strings.ToLower(strings.TrimSpace(input.Specialty))
	input.Bio = strings.TrimSpace(input.Bio)
	input.Currency = strings.ToLower(strings.TrimSpace(input.Currency))
}

func SanitizeSearchProvidersRequest(input *requests.SearchProviders) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialty = strings.ToLower(strings.TrimSpace(input.Specialty))
	input.Date = strings.TrimSpace(input.Date)
}

// SanitizeSendMessageRequest only trims the recipient. The sender must
// match the identity exactly, and content is left for moderation.
func SanitizeSendMessageRequest(input *requests.SendMessage) {
	input.RecipientID = strings.TrimSpace(input.RecipientID)
}

func SanitizeCheckoutRequest(input *requests.Checkout) {
	input.ProviderID = strings.TrimSpace(input.ProviderID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.ToUpper(strings.TrimSpace(input.Time))
}
