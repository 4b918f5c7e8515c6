package user

import (
	"context"

	"github.com/google/uuid"
)

type Usecase interface {
	// Register creates an account and returns the user with a signed token.
	Register(ctx context.Context, cmd RegisterCommand) (*UserWithToken, error)

	Login(ctx context.Context, cmd LoginCommand) (*UserWithToken, error)

	// UpdateProfile applies a field delta for the owner; empty deltas are
	// rejected, username changes re-check uniqueness.
	UpdateProfile(ctx context.Context, userID uuid.UUID, delta ProfileDelta) (*UserDTO, error)
}
