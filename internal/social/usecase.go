package social

import (
	"context"

	"github.com/google/uuid"

	"tycord/internal/user"
)

// Usecase is the social graph engine. Every mutating operation resolves the
// counterpart from current store state and returns it so the caller can fan
// out a notification.
type Usecase interface {
	SendRequest(ctx context.Context, requesterID uuid.UUID, targetUsername string) (*user.UserDTO, error)
	AcceptRequest(ctx context.Context, receiverID uuid.UUID, requesterUsername string) (*user.UserDTO, error)
	DeclineRequest(ctx context.Context, receiverID uuid.UUID, requesterUsername string) (*user.UserDTO, error)
	CancelRequest(ctx context.Context, requesterID uuid.UUID, receiverUsername string) (*user.UserDTO, error)
	Unfriend(ctx context.Context, userID uuid.UUID, otherUsername string) (*user.UserDTO, error)
	Block(ctx context.Context, userID uuid.UUID, targetUsername string) (*user.UserDTO, error)
	Unblock(ctx context.Context, userID uuid.UUID, targetUsername string) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
}
