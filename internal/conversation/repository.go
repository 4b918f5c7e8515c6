package conversation

import (
	"context"

	"github.com/google/uuid"

	models "tycord/internal/conversation/model"
	usermodels "tycord/internal/user/model"
)

type Repository interface {
	// FindRecipients resolves usernames to users, excluding anyone with a
	// block in either direction relative to creatorID. Callers compare the
	// result size against the request to detect invalid recipients.
	FindRecipients(ctx context.Context, creatorID uuid.UUID, usernames []string) ([]usermodels.User, error)

	// CreateConversation inserts the conversation and every participant row
	// in one transaction; any failure rolls the whole creation back.
	CreateConversation(ctx context.Context, convo *models.Conversation, memberIDs []uuid.UUID) error

	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error)

	// Leave removes the caller's participant row; when 2 or fewer members
	// remain beforehand it instead deletes messages, participants and the
	// conversation itself, in that order, all in one transaction. Returns
	// whether the conversation was deleted.
	Leave(ctx context.Context, userID, convoID uuid.UUID) (deleted bool, err error)

	IsParticipant(ctx context.Context, userID, convoID uuid.UUID) (bool, error)
	ParticipantIDs(ctx context.Context, convoID uuid.UUID) ([]uuid.UUID, error)

	ListMessages(ctx context.Context, convoID uuid.UUID) ([]MessageDTO, error)

	// CreateMessage re-checks membership and inserts inside one transaction
	// so a concurrent removal cannot slip a message in. The returned DTO
	// carries the author's profile fields.
	CreateMessage(ctx context.Context, authorID, convoID uuid.UUID, content string) (*MessageDTO, error)

	// DeleteMessage is an idempotent no-op when no row matches the
	// author/conversation/message triple.
	DeleteMessage(ctx context.Context, authorID, convoID, messageID uuid.UUID) error
}
