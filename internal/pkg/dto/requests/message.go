package requests

// SendMessage is moderated before it is stored. Sender identity and content
// emptiness are reported by moderation rather than by struct validation.
type SendMessage struct {
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id" validate:"required"`
	Content     string `json:"content"`
}
