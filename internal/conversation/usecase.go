package conversation

import (
	"context"

	"github.com/google/uuid"
)

type Usecase interface {
	// Create validates and deduplicates recipients (the creator naming
	// themselves is a no-op, a conversation with only the creator is
	// allowed) and creates the conversation atomically.
	Create(ctx context.Context, creatorID uuid.UUID, cmd CreateCommand) (*ConversationDTO, error)

	List(ctx context.Context, userID uuid.UUID) ([]ConversationDTO, error)

	// Leave deletes the conversation outright (messages first) when the
	// caller is one of the last two participants.
	Leave(ctx context.Context, userID, convoID uuid.UUID) (deleted bool, err error)

	ListMessages(ctx context.Context, userID, convoID uuid.UUID) ([]MessageDTO, error)
	PostMessage(ctx context.Context, userID, convoID uuid.UUID, content string) (*MessageDTO, error)
	DeleteMessage(ctx context.Context, userID, convoID, messageID uuid.UUID) error
}
