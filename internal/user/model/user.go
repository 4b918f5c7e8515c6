package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique @handle (used for identity), max 12 chars
	Username string `bun:",unique,notnull"`

	// Nickname = display name shown in chats (can be changed freely)
	Nickname string `bun:",notnull"`

	Email    string `bun:",unique,notnull"`
	Password string `bun:",notnull" json:"-"`

	Avatar string `bun:",nullzero"`
	Bio    string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
