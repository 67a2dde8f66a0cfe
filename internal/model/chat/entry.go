package chat

import "time"

// Author tags who produced an entry.
const (
	AuthorUser = "user"
	AuthorBot  = "bot"
)

// Entry is one immutable turn in a conversation.
type Entry struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Author         string    `json:"author"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}
