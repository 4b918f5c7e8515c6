package user

import (
	"context"

	"github.com/google/uuid"

	models "tycord/internal/user/model"
)

type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateProfile writes only the columns present in the delta.
	UpdateProfile(ctx context.Context, userID uuid.UUID, delta ProfileDelta) error

	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
