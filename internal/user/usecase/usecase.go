package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tycord/config"
	"tycord/internal/user"
	models "tycord/internal/user/model"
	"tycord/internal/user/repository"
	"tycord/pkg/errors"
	"tycord/pkg/logger"
	"tycord/pkg/utils"
)

const (
	maxUsernameLen = 12
	maxNicknameLen = 12
	maxBioLen      = 50
	minPasswordLen = 8
)

type UserUsecase struct {
	repo   user.Repository
	logger *logger.Logger
	config *config.Config
}

func NewUserUsecase(repo user.Repository, logger *logger.Logger, config *config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserWithToken, error) {
	if cmd.Email == "" || cmd.Password == "" || cmd.Username == "" || cmd.Nickname == "" {
		return nil, errors.InvalidArg("one or more fields were not provided")
	}
	if len(cmd.Password) < minPasswordLen {
		return nil, errors.ErrPasswordTooWeak
	}
	if len(cmd.Username) > maxUsernameLen {
		return nil, errors.ErrUsernameTooLong
	}
	if len(cmd.Nickname) > maxNicknameLen {
		return nil, errors.ErrNicknameTooLong
	}

	if taken, err := uc.repo.EmailExists(ctx, cmd.Email); err != nil {
		uc.logger.Error("database error checking email", "err", err)
		return nil, errors.Internal("internal server error")
	} else if taken {
		return nil, errors.ErrEmailTaken
	}
	if taken, err := uc.repo.UsernameExists(ctx, cmd.Username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.Internal("internal server error")
	} else if taken {
		return nil, errors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("failed to hash password")
	}

	u := &models.User{
		Email:    cmd.Email,
		Password: string(hash),
		Username: cmd.Username,
		Nickname: cmd.Nickname,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		// The unique constraints close the race behind the pre-checks.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errors.ErrUsernameTaken
		}
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.Internal("registration failed")
	}

	token, err := utils.GenerateJWTToken(u.ID, uc.config)
	if err != nil {
		uc.logger.Error("failed to sign token", "err", err)
		return nil, errors.Internal("registration failed")
	}

	return &user.UserWithToken{User: toDTO(u), Token: token}, nil
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.UserWithToken, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.InvalidArg("email and password are required")
	}

	u, err := uc.repo.GetUserByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrInvalidLogin
		}
		uc.logger.Error("database error during login", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(cmd.Password)); err != nil {
		return nil, errors.ErrInvalidLogin
	}

	token, err := utils.GenerateJWTToken(u.ID, uc.config)
	if err != nil {
		uc.logger.Error("failed to sign token", "err", err)
		return nil, errors.Internal("login failed")
	}

	return &user.UserWithToken{User: toDTO(u), Token: token}, nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, delta user.ProfileDelta) (*user.UserDTO, error) {
	if delta.Empty() {
		return nil, errors.ErrNothingToUpdate
	}
	if delta.Username != nil && (len(*delta.Username) == 0 || len(*delta.Username) > maxUsernameLen) {
		return nil, errors.ErrUsernameTooLong
	}
	if delta.Nickname != nil && (len(*delta.Nickname) == 0 || len(*delta.Nickname) > maxNicknameLen) {
		return nil, errors.ErrNicknameTooLong
	}
	if delta.Bio != nil && len(*delta.Bio) > maxBioLen {
		return nil, errors.ErrBioTooLong
	}

	current, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error loading profile", "err", err)
		return nil, errors.Internal("internal server error")
	}

	// Drop fields that match the current state so the delta holds only real
	// changes.
	if delta.Username != nil && *delta.Username == current.Username {
		delta.Username = nil
	}
	if delta.Nickname != nil && *delta.Nickname == current.Nickname {
		delta.Nickname = nil
	}
	if delta.Avatar != nil && *delta.Avatar == current.Avatar {
		delta.Avatar = nil
	}
	if delta.Bio != nil && *delta.Bio == current.Bio {
		delta.Bio = nil
	}
	if delta.Empty() {
		return nil, errors.ErrNothingToUpdate
	}

	if delta.Username != nil {
		if taken, err := uc.repo.UsernameExists(ctx, *delta.Username); err != nil {
			uc.logger.Error("database error checking username", "err", err)
			return nil, errors.Internal("internal server error")
		} else if taken {
			return nil, errors.ErrUsernameTaken
		}
	}

	if err := uc.repo.UpdateProfile(ctx, userID, delta); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errors.ErrUsernameTaken
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Errorf("error while updating profile in db: %v", err)
		return nil, errors.Internal("internal server error")
	}

	updated, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		uc.logger.Error("database error reloading profile", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(updated), nil
}

func toDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
	}
}
