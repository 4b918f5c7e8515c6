package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Input commands
type CreateCommand struct {
	Name               string
	RecipientUsernames []string
	Image              string
}

// Output DTOs
type ConversationDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image"`
}

// MessageDTO joins the author's public profile fields as of read time; it is
// not a durable snapshot.
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}
