package models

import (
	"time"

	"github.com/google/uuid"

	usermodels "tycord/internal/user/model"
)

type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Name  string `bun:",notnull"`
	Image string `bun:",nullzero"`

	CreatorID uuid.UUID        `bun:",notnull,type:uuid"`
	Creator   *usermodels.User `bun:"rel:belongs-to,join:creator_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Participant has no lifecycle of its own: rows exist exactly while the user
// is a member of a live conversation.
type Participant struct {
	ConversationID uuid.UUID     `bun:",pk,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	UserID uuid.UUID        `bun:",pk,type:uuid"`
	User   *usermodels.User `bun:"rel:belongs-to,join:user_id=id"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	AuthorID uuid.UUID        `bun:",notnull,type:uuid"`
	Author   *usermodels.User `bun:"rel:belongs-to,join:author_id=id"`

	Content string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
