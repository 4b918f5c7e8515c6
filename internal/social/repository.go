package social

import (
	"context"

	"github.com/google/uuid"

	usermodels "tycord/internal/user/model"
)

type Repository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*usermodels.User, error)
	GetUserByUsername(ctx context.Context, username string) (*usermodels.User, error)

	// CreateRequest re-checks inside one transaction that no edge, request or
	// block exists between the pair (either direction) before inserting.
	CreateRequest(ctx context.Context, requesterID, receiverID uuid.UUID) error

	// PromoteRequest atomically deletes the pending request and inserts the
	// friend edge.
	PromoteRequest(ctx context.Context, requesterID, receiverID uuid.UUID) error

	DeleteRequest(ctx context.Context, requesterID, receiverID uuid.UUID) error
	DeleteFriendEdge(ctx context.Context, a, b uuid.UUID) error

	// CreateBlock inserts the block edge and removes any friend edge and any
	// request between the pair, all in one transaction.
	CreateBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error
	DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error

	ListFriends(ctx context.Context, userID uuid.UUID) ([]usermodels.User, error)
	ListIncomingRequests(ctx context.Context, userID uuid.UUID) ([]usermodels.User, error)
	ListOutgoingRequests(ctx context.Context, userID uuid.UUID) ([]usermodels.User, error)
	ListBlocked(ctx context.Context, userID uuid.UUID) ([]usermodels.User, error)
}
