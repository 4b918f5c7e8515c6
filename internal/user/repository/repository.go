package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"tycord/internal/database"
	"tycord/internal/user"
	models "tycord/internal/user/model"
	"tycord/pkg/logger"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrDuplicate    = errors.New("username or email already in use")
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) error {
	_, err := r.db.NewInsert().Model(u).Returning("*").Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return errors.Wrap(err, "userRepo.CreateUser.Insert")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u := new(models.User)
	err := r.db.NewSelect().Model(u).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan")
	}
	return u, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u := new(models.User)
	err := r.db.NewSelect().Model(u).Where("email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByEmail.Scan")
	}
	return u, nil
}

// UpdateProfile emits one UPDATE with exactly the columns set in the delta.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, delta user.ProfileDelta) error {
	if delta.Empty() {
		return nil
	}

	q := r.db.NewUpdate().Model((*models.User)(nil)).Where("id = ?", userID)
	if delta.Username != nil {
		q = q.Set("username = ?", *delta.Username)
	}
	if delta.Nickname != nil {
		q = q.Set("nickname = ?", *delta.Nickname)
	}
	if delta.Avatar != nil {
		q = q.Set("avatar = ?", *delta.Avatar)
	}
	if delta.Bio != nil {
		q = q.Set("bio = ?", *delta.Bio)
	}
	q = q.Set("updated_at = current_timestamp")

	res, err := q.Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return errors.Wrap(err, "userRepo.UpdateProfile.Update")
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*models.User)(nil)).Where("username = ?", username).Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UsernameExists")
	}
	return exists, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*models.User)(nil)).Where("email = ?", email).Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.EmailExists")
	}
	return exists, nil
}
