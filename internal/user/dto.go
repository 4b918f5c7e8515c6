package user

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// NOTE: DTOs travel from usecase to handler

// Input commands
type RegisterCommand struct {
	Email    string
	Password string
	Username string
	Nickname string
}

type LoginCommand struct {
	Email    string
	Password string
}

// ProfileDelta carries only the fields the caller wants changed. A nil field
// is "leave as is"; the repository emits exactly the set columns.
type ProfileDelta struct {
	Username *string
	Nickname *string
	Avatar   *string
	Bio      *string
}

func (d ProfileDelta) Empty() bool {
	return d.Username == nil && d.Nickname == nil && d.Avatar == nil && d.Bio == nil
}

// Output DTOs
type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Nickname string    `json:"nickname"`
	Avatar   string    `json:"avatar"`
	Bio      string    `json:"bio"`
}

type UserWithToken struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}
