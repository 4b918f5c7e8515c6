package realtime

import "github.com/google/uuid"

// Outbound event tags.
const (
	EventNewConversation = "new_conversation"
	EventNewMessage      = "new_message"
	EventFriendsUpdated  = "friends_updated"
	EventJoinedRoom      = "joined_room"
	EventLeftRoom        = "left_room"
)

// Inbound event tags.
const (
	EventJoinConversation   = "join_conversation"
	EventClosedConversation = "closed_conversation"
)

// InboundEvent is what a connected client may send over the socket.
type InboundEvent struct {
	Type           string    `json:"type"`
	ConversationID uuid.UUID `json:"conversationId"`
}
