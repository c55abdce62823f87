package models

import "caremarket-service/internal/pkg/dto/responses"

type MessageInput struct {
	SenderID    string
	RecipientID string
	Content     string
}

// ModeratedMessage is the accepted form of a MessageInput. Timestamp is
// always assigned by the server in RFC3339 UTC.
type ModeratedMessage struct {
	SenderID    string
	RecipientID string
	Content     string
	Timestamp   string
}

type Message struct {
	ID          string `bson:"_id" json:"id"`
	SenderID    string `bson:"senderId" json:"senderId"`
	RecipientID string `bson:"recipientId" json:"recipientId"`
	Content     string `bson:"content" json:"content"`
	Timestamp   string `bson:"timestamp" json:"timestamp"`
}

func (m Message) ConvertIntoResponse() responses.Message {
	return responses.Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		Timestamp:   m.Timestamp,
	}
}
